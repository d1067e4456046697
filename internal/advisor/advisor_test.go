package advisor

import (
	"strings"
	"testing"

	"scorecast/internal/models"
)

func TestNormalizeBounds(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{112.4, 99.9},
		{99.95, 99.9},
		{-0.53, 0},
		{64.258139, 64.3},
		{64.24, 64.2},
		{0, 0},
		{99.9, 99.9},
	}
	for _, c := range cases {
		got := Normalize(c.raw)
		if got != c.want {
			t.Fatalf("Normalize(%v) = %v, want %v", c.raw, got, c.want)
		}
		if got < 0 || got > 99.9 {
			t.Fatalf("Normalize(%v) = %v outside [0, 99.9]", c.raw, got)
		}
	}
}

func TestAdviseTiers(t *testing.T) {
	cases := []struct {
		score float64
		want  models.Tier
	}{
		{95.0, models.TierHigh},
		{90.1, models.TierHigh},
		{90.0, models.TierMid}, // strict > at the high boundary
		{75.0, models.TierMid},
		{70.1, models.TierMid},
		{70.0, models.TierLow}, // strict > at the mid boundary
		{42.0, models.TierLow},
		{0, models.TierLow},
	}
	for _, c := range cases {
		_, tier := Advise(c.score, "Maths")
		if tier != c.want {
			t.Fatalf("Advise(%v) tier = %s, want %s", c.score, tier, c.want)
		}
	}
}

func TestAdviseMidTierNamesWeakSubject(t *testing.T) {
	msg, _ := Advise(80, "Science")
	if !strings.Contains(msg, "Science") {
		t.Fatalf("mid-tier advice %q does not reference the weak subject", msg)
	}
}
