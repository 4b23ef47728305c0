package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitAttemptRequest struct {
	QuizID string `json:"quiz_id" validate:"required"`
	// {question_id: selected_option 1..4}
	Answers map[string]int `json:"answers" validate:"required"`
}

type AttemptResultResponse struct {
	AttemptID      uuid.UUID `json:"attempt_id"`
	QuizID         uuid.UUID `json:"quiz_id"`
	Score          float64   `json:"score"`
	CorrectCount   int       `json:"correct_count"`
	TotalSubmitted int       `json:"total_submitted"`
}

// Baris hasil join attempts LEFT JOIN scores.
type HistoryRow struct {
	QuizAttemptID        uuid.UUID `gorm:"column:quiz_attempt_id"`
	QuizAttemptQuizID    uuid.UUID `gorm:"column:quiz_attempt_quiz_id"`
	QuizAttemptStartTime time.Time `gorm:"column:quiz_attempt_start_time"`
	ScoreTotalScore      *float64  `gorm:"column:score_total_score"`
}

type HistoryItem struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	QuizID    uuid.UUID `json:"quiz_id"`
	StartTime string    `json:"start_time"`
	// angka persentase, atau "N/A" kalau belum ada score
	Score any `json:"score"`
}

func ToHistoryItems(rows []HistoryRow) []HistoryItem {
	out := make([]HistoryItem, 0, len(rows))
	for i := range rows {
		var score any = "N/A"
		if rows[i].ScoreTotalScore != nil {
			score = *rows[i].ScoreTotalScore
		}
		out = append(out, HistoryItem{
			AttemptID: rows[i].QuizAttemptID,
			QuizID:    rows[i].QuizAttemptQuizID,
			StartTime: rows[i].QuizAttemptStartTime.UTC().Format(time.RFC3339),
			Score:     score,
		})
	}
	return out
}
