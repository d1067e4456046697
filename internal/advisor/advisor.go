// Package advisor turns a raw model output into the bounded score and the
// advisory message shown to the student.
package advisor

import (
	"fmt"
	"math"

	"scorecast/internal/models"
)

const (
	// ScoreCeiling keeps the displayed score strictly below 100 no matter
	// what the model produces.
	ScoreCeiling = 99.9

	// Tier cut points. Comparisons are strict, so a score of exactly 90.0
	// lands in the mid tier and exactly 70.0 in the low tier.
	highThreshold = 90.0
	midThreshold  = 70.0
)

// Normalize clamps a raw score into [0, ScoreCeiling] and rounds it to one
// decimal place.
func Normalize(raw float64) float64 {
	clamped := math.Min(ScoreCeiling, math.Max(0, raw))
	return math.Round(clamped*10) / 10
}

// Advise maps a normalized score to an advisory message and tier.
func Advise(score float64, weakSubject string) (string, models.Tier) {
	switch {
	case score > highThreshold:
		return "Outstanding! Your consistency has you on the topper track.", models.TierHigh
	case score > midThreshold:
		return fmt.Sprintf("Good progress, but %s needs focused improvement to break into the top band.", weakSubject), models.TierMid
	default:
		return "Critical warning: you need immediate academic support.", models.TierLow
	}
}
