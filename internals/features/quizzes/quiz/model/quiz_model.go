package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizModel struct {
	QuizID        uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizChapterID uuid.UUID `gorm:"column:quiz_chapter_id;type:uuid;not null;index:idx_quizzes_chapter" json:"quiz_chapter_id"`

	QuizDate            time.Time `gorm:"column:quiz_date;type:date;not null" json:"quiz_date"`
	QuizDurationMinutes int       `gorm:"column:quiz_duration_minutes;not null" json:"quiz_duration_minutes"`
	QuizRemarks         *string   `gorm:"column:quiz_remarks;type:text" json:"quiz_remarks,omitempty"`

	QuizCreatedAt time.Time `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`
}

// TableName overrides the table name used by GORM.
func (QuizModel) TableName() string {
	return "quizzes"
}
