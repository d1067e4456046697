// Package schedule builds the daily study plan that accompanies a
// prediction: 40% of the hours go to the weak subject first, the rest rotate
// over the remaining subjects.
package schedule

import (
	"fmt"
	"math"
	"time"

	"scorecast/internal/models"
)

// Slots start at 16:00 and run back to back in 60-minute blocks.
const anchorHour = 16

// defaultSubjects is the rotation pool before the weak subject is removed.
var defaultSubjects = []string{"Maths", "Science", "English", "SST"}

// weakBlockCount is 40% of the total hours, rounded down, never below one.
func weakBlockCount(totalHours int) int {
	return int(math.Max(1, math.Floor(float64(totalHours)*0.4)))
}

// Build returns one entry per study hour. The first weakBlockCount entries
// are Concept Learning slots for the weak subject; the remainder are
// Practice slots cycling through the other subjects in fixed order. Callers
// guarantee 1 <= totalHours <= 14.
func Build(totalHours int, weakSubject string) []models.ScheduleEntry {
	rotation := make([]string, 0, len(defaultSubjects))
	for _, s := range defaultSubjects {
		if s != weakSubject {
			rotation = append(rotation, s)
		}
	}

	weak := weakBlockCount(totalHours)
	if weak > totalHours {
		weak = totalHours
	}
	if totalHours < 1 {
		totalHours = 1
		weak = 1
	}

	entries := make([]models.ScheduleEntry, 0, totalHours)
	start := time.Date(0, time.January, 1, anchorHour, 0, 0, 0, time.UTC)
	for i := 0; i < totalHours; i++ {
		end := start.Add(time.Hour)
		e := models.ScheduleEntry{
			Start: start,
			End:   end,
			Slot:  fmt.Sprintf("%s - %s", start.Format("3:04 PM"), end.Format("3:04 PM")),
		}
		if i < weak {
			e.Subject = weakSubject
			e.Activity = models.ActivityConceptLearning
		} else {
			e.Subject = rotation[(i-weak)%len(rotation)]
			e.Activity = models.ActivityPractice
		}
		entries = append(entries, e)
		start = end
	}
	return entries
}
