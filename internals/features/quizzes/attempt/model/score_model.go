package model

import (
	"time"

	"github.com/google/uuid"
)

type ScoreModel struct {
	ScoreID            uuid.UUID `gorm:"column:score_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"score_id"`
	ScoreQuizAttemptID uuid.UUID `gorm:"column:score_quiz_attempt_id;type:uuid;not null;uniqueIndex:uq_scores_attempt" json:"score_quiz_attempt_id"`

	// persentase 0..100
	ScoreTotalScore float64   `gorm:"column:score_total_score;type:numeric(5,2);not null" json:"score_total_score"`
	ScoreTimestamp  time.Time `gorm:"column:score_timestamp;not null;autoCreateTime" json:"score_timestamp"`
}

// TableName overrides the table name used by GORM.
func (ScoreModel) TableName() string {
	return "scores"
}
