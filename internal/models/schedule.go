package models

import "time"

// Activity labels what a study slot is for.
type Activity string

const (
	ActivityConceptLearning Activity = "Concept Learning"
	ActivityPractice        Activity = "Practice"
)

// ScheduleEntry is one 60-minute slot of the daily study plan. Entries are
// ordered chronologically and never persisted.
type ScheduleEntry struct {
	Start    time.Time `json:"-"`
	End      time.Time `json:"-"`
	Slot     string    `json:"time"` // e.g. "4:00 PM - 5:00 PM"
	Subject  string    `json:"subject"`
	Activity Activity  `json:"activity"`
}
