package regression

import "scorecast/internal/models"

// DefaultSamples returns the canonical training set the model is fit on at
// startup. The rows are fixed; they are not read from any external source.
func DefaultSamples() []models.Sample {
	return []models.Sample{
		{StudyHours: 2, PreviousMarks: 50, SleepHours: 9, FinalScore: 55},
		{StudyHours: 4, PreviousMarks: 60, SleepHours: 8, FinalScore: 65},
		{StudyHours: 6, PreviousMarks: 75, SleepHours: 7, FinalScore: 82},
		{StudyHours: 8, PreviousMarks: 85, SleepHours: 7, FinalScore: 88},
		{StudyHours: 10, PreviousMarks: 95, SleepHours: 8, FinalScore: 98},
		{StudyHours: 3, PreviousMarks: 55, SleepHours: 8, FinalScore: 58},
		{StudyHours: 5, PreviousMarks: 70, SleepHours: 7, FinalScore: 72},
		{StudyHours: 7, PreviousMarks: 80, SleepHours: 6, FinalScore: 85},
		{StudyHours: 9, PreviousMarks: 90, SleepHours: 8, FinalScore: 93},
		{StudyHours: 12, PreviousMarks: 98, SleepHours: 8, FinalScore: 99},
	}
}
