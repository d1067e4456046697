package models

// Sample is one row of the training dataset.
type Sample struct {
	StudyHours    float64
	PreviousMarks float64
	SleepHours    float64
	FinalScore    float64
}

// StudentInput is a single prediction request from the student form.
type StudentInput struct {
	Name          string `json:"name" binding:"required"`
	PreviousMarks int    `json:"previous_marks" binding:"min=0,max=100"`
	StudyHours    int    `json:"study_hours" binding:"required,min=1,max=14"`
	SleepHours    int    `json:"sleep_hours" binding:"required,min=4,max=12"`
	WeakSubject   string `json:"weak_subject" binding:"required,oneof=Maths Science SST English Hindi"`
}

// Tier is the discrete advisory category derived from a predicted score.
type Tier string

const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

// Prediction holds the derived result for one submission. It lives only as
// long as the session that produced it.
type Prediction struct {
	RawScore float64 `json:"-"`
	Score    float64 `json:"score"`
	Advice   string  `json:"advice"`
	Tier     Tier    `json:"tier"`
}
