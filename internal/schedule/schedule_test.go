package schedule

import (
	"testing"
	"time"

	"scorecast/internal/models"
)

func TestBuildLengthAndWeakPrefix(t *testing.T) {
	for hours := 1; hours <= 14; hours++ {
		entries := Build(hours, "Maths")
		if len(entries) != hours {
			t.Fatalf("hours=%d: got %d entries", hours, len(entries))
		}

		wantWeak := hours * 2 / 5 // floor(hours*0.4)
		if wantWeak < 1 {
			wantWeak = 1
		}
		for i := 0; i < wantWeak; i++ {
			if entries[i].Subject != "Maths" {
				t.Fatalf("hours=%d entry %d: subject %q, want weak subject prefix", hours, i, entries[i].Subject)
			}
			if entries[i].Activity != models.ActivityConceptLearning {
				t.Fatalf("hours=%d entry %d: activity %q, want Concept Learning", hours, i, entries[i].Activity)
			}
		}
		for i := wantWeak; i < hours; i++ {
			if entries[i].Subject == "Maths" {
				t.Fatalf("hours=%d entry %d: weak subject leaked into the practice rotation", hours, i)
			}
			if entries[i].Activity != models.ActivityPractice {
				t.Fatalf("hours=%d entry %d: activity %q, want Practice", hours, i, entries[i].Activity)
			}
		}
	}
}

func TestBuildChronology(t *testing.T) {
	entries := Build(10, "Science")
	anchor := time.Date(0, time.January, 1, 16, 0, 0, 0, time.UTC)
	if !entries[0].Start.Equal(anchor) {
		t.Fatalf("first slot starts %v, want 16:00 anchor", entries[0].Start)
	}
	for i, e := range entries {
		if e.End.Sub(e.Start) != time.Hour {
			t.Fatalf("entry %d: slot length %v, want 1h", i, e.End.Sub(e.Start))
		}
		if i > 0 && !e.Start.Equal(entries[i-1].End) {
			t.Fatalf("entry %d: starts %v, previous ended %v (gap or overlap)", i, e.Start, entries[i-1].End)
		}
	}
	if entries[0].Slot != "4:00 PM - 5:00 PM" {
		t.Fatalf("first slot label %q", entries[0].Slot)
	}
}

func TestBuildRotationOrder(t *testing.T) {
	entries := Build(9, "Science")
	// floor(9*0.4) = 3 weak slots, then Maths/English/SST round-robin.
	wantRotation := []string{"Maths", "English", "SST", "Maths", "English", "SST"}
	for i, want := range wantRotation {
		if got := entries[3+i].Subject; got != want {
			t.Fatalf("practice slot %d: %q, want %q", i, got, want)
		}
	}
}

func TestBuildWeakSubjectOutsideRotationPool(t *testing.T) {
	// Hindi is not in the default rotation pool; removal is a no-op and all
	// four defaults keep rotating.
	entries := Build(6, "Hindi")
	if entries[0].Subject != "Hindi" || entries[1].Subject != "Hindi" {
		t.Fatalf("weak prefix not Hindi: %q, %q", entries[0].Subject, entries[1].Subject)
	}
	want := []string{"Maths", "Science", "English", "SST"}
	for i, w := range want {
		if entries[2+i].Subject != w {
			t.Fatalf("practice slot %d: %q, want %q", i, entries[2+i].Subject, w)
		}
	}
}

func TestBuildSingleHour(t *testing.T) {
	entries := Build(1, "English")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Subject != "English" || entries[0].Activity != models.ActivityConceptLearning {
		t.Fatalf("single hour must be a weak-subject concept slot, got %+v", entries[0])
	}
}
