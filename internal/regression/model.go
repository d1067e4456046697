package regression

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"scorecast/internal/models"
)

// Model is a three-feature linear regression fit by ordinary least squares.
// It is fit once at startup and read-only afterwards, so it is safe to share
// across requests without synchronization.
type Model struct {
	intercept float64
	weights   [3]float64
}

var errTooFewSamples = errors.New("regression: need at least 4 samples to fit 3 features")

// Fit solves the least-squares problem for the given samples via QR
// factorization of the design matrix (intercept column plus the three
// features).
func Fit(samples []models.Sample) (*Model, error) {
	n := len(samples)
	if n < 4 {
		return nil, errTooFewSamples
	}

	a := mat.NewDense(n, 4, nil)
	b := mat.NewVecDense(n, nil)
	for i, s := range samples {
		a.SetRow(i, []float64{1, s.StudyHours, s.PreviousMarks, s.SleepHours})
		b.SetVec(i, s.FinalScore)
	}

	var qr mat.QR
	qr.Factorize(a)

	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, b); err != nil {
		return nil, err
	}

	m := &Model{intercept: coef.AtVec(0)}
	for j := 0; j < 3; j++ {
		m.weights[j] = coef.AtVec(j + 1)
	}
	return m, nil
}

// Predict returns the raw (unclamped) score for a feature vector.
func (m *Model) Predict(studyHours, previousMarks, sleepHours float64) float64 {
	return m.intercept +
		m.weights[0]*studyHours +
		m.weights[1]*previousMarks +
		m.weights[2]*sleepHours
}

// Coefficients returns the fitted intercept and feature weights, mainly for
// logging at startup.
func (m *Model) Coefficients() (intercept float64, weights [3]float64) {
	return m.intercept, m.weights
}
