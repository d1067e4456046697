package regression

import (
	"math"
	"testing"

	"scorecast/internal/models"
)

func TestFitCanonicalDataset(t *testing.T) {
	m, err := Fit(DefaultSamples())
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	// Pinned against an independent least-squares computation for the
	// canonical 10-row dataset.
	got := m.Predict(4, 60, 7)
	want := 64.2581
	if math.Abs(got-want) > 0.5 {
		t.Fatalf("predict(4,60,7) = %.4f, want %.4f +/- 0.5", got, want)
	}

	intercept, weights := m.Coefficients()
	wantIntercept := 1.5294
	wantWeights := [3]float64{-1.0315, 1.1441, -0.2563}
	if math.Abs(intercept-wantIntercept) > 0.01 {
		t.Fatalf("intercept = %.4f, want %.4f", intercept, wantIntercept)
	}
	for i, w := range weights {
		if math.Abs(w-wantWeights[i]) > 0.01 {
			t.Fatalf("weight[%d] = %.4f, want %.4f", i, w, wantWeights[i])
		}
	}
}

func TestFitReproducesTrainingRows(t *testing.T) {
	samples := DefaultSamples()
	m, err := Fit(samples)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for _, s := range samples {
		got := m.Predict(s.StudyHours, s.PreviousMarks, s.SleepHours)
		if math.Abs(got-s.FinalScore) > 5.0 {
			t.Fatalf("predict(%v,%v,%v) = %.2f, training target %.2f diverges past residual bound",
				s.StudyHours, s.PreviousMarks, s.SleepHours, got, s.FinalScore)
		}
	}
}

func TestFitRejectsTooFewSamples(t *testing.T) {
	_, err := Fit([]models.Sample{{StudyHours: 2, PreviousMarks: 50, SleepHours: 9, FinalScore: 55}})
	if err == nil {
		t.Fatal("expected error for underdetermined fit")
	}
}
