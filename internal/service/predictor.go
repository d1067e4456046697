package service

import (
	"go.uber.org/zap"

	"scorecast/internal/advisor"
	"scorecast/internal/models"
	"scorecast/internal/regression"
)

// PredictionService runs the predict → normalize → advise pipeline and opens
// a session for the result. The regression model is fit once at startup and
// treated as immutable here.
type PredictionService struct {
	model    *regression.Model
	sessions *SessionStore
	logger   *zap.Logger
}

func NewPredictionService(model *regression.Model, sessions *SessionStore, logger *zap.Logger) *PredictionService {
	return &PredictionService{
		model:    model,
		sessions: sessions,
		logger:   logger,
	}
}

// Predict scores the input and returns the derived result together with the
// session created for it. Inputs are pre-bounded by request validation, so
// the pipeline itself has no failure mode.
func (s *PredictionService) Predict(input models.StudentInput) (models.Prediction, *Session) {
	raw := s.model.Predict(float64(input.StudyHours), float64(input.PreviousMarks), float64(input.SleepHours))
	score := advisor.Normalize(raw)
	advice, tier := advisor.Advise(score, input.WeakSubject)

	pred := models.Prediction{
		RawScore: raw,
		Score:    score,
		Advice:   advice,
		Tier:     tier,
	}

	sess := s.sessions.Create(input.Name, score, input.StudyHours, input.WeakSubject, advice, tier)
	s.logger.Info("prediction completed",
		zap.String("session_id", sess.ID),
		zap.Float64("score", score),
		zap.String("tier", string(tier)))
	return pred, sess
}

// Session resolves a previously created prediction session.
func (s *PredictionService) Session(id string) (*Session, bool) {
	return s.sessions.Get(id)
}
