package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizAttemptModel struct {
	QuizAttemptID     uuid.UUID `gorm:"column:quiz_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_attempt_id"`
	QuizAttemptQuizID uuid.UUID `gorm:"column:quiz_attempt_quiz_id;type:uuid;not null;index:idx_quiz_attempts_quiz" json:"quiz_attempt_quiz_id"`
	QuizAttemptUserID uuid.UUID `gorm:"column:quiz_attempt_user_id;type:uuid;not null;index:idx_quiz_attempts_user" json:"quiz_attempt_user_id"`

	QuizAttemptStartTime time.Time `gorm:"column:quiz_attempt_start_time;not null" json:"quiz_attempt_start_time"`
	QuizAttemptEndTime   time.Time `gorm:"column:quiz_attempt_end_time;not null" json:"quiz_attempt_end_time"`

	// jawaban mentah yang disubmit: {question_id: selected_option}
	QuizAttemptAnswers datatypes.JSON `gorm:"column:quiz_attempt_answers;type:jsonb" json:"quiz_attempt_answers,omitempty"`
}

// TableName overrides the table name used by GORM.
func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}
