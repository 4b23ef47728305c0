package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type QuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionQuizID uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index:idx_questions_quiz" json:"question_quiz_id"`

	QuestionText    string  `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOption1 string  `gorm:"column:question_option1;type:varchar(255);not null" json:"question_option1"`
	QuestionOption2 string  `gorm:"column:question_option2;type:varchar(255);not null" json:"question_option2"`
	QuestionOption3 *string `gorm:"column:question_option3;type:varchar(255)" json:"question_option3,omitempty"`
	QuestionOption4 *string `gorm:"column:question_option4;type:varchar(255)" json:"question_option4,omitempty"`

	// 1..4, harus menunjuk slot opsi yang terisi
	QuestionCorrectOption int `gorm:"column:question_correct_option;not null" json:"question_correct_option"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;not null;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;not null;autoUpdateTime" json:"question_updated_at"`
}

// TableName overrides the table name used by GORM.
func (QuestionModel) TableName() string {
	return "questions"
}

// Options mengembalikan slot opsi yang terisi, berurutan 1..4.
func (m *QuestionModel) Options() []string {
	out := []string{m.QuestionOption1, m.QuestionOption2}
	if m.QuestionOption3 != nil && strings.TrimSpace(*m.QuestionOption3) != "" {
		out = append(out, *m.QuestionOption3)
	}
	if m.QuestionOption4 != nil && strings.TrimSpace(*m.QuestionOption4) != "" {
		out = append(out, *m.QuestionOption4)
	}
	return out
}

func (m *QuestionModel) optionSlotFilled(slot int) bool {
	switch slot {
	case 1:
		return strings.TrimSpace(m.QuestionOption1) != ""
	case 2:
		return strings.TrimSpace(m.QuestionOption2) != ""
	case 3:
		return m.QuestionOption3 != nil && strings.TrimSpace(*m.QuestionOption3) != ""
	case 4:
		return m.QuestionOption4 != nil && strings.TrimSpace(*m.QuestionOption4) != ""
	default:
		return false
	}
}

// ValidateShape memastikan correct_option menunjuk slot opsi yang terisi.
func (m *QuestionModel) ValidateShape() error {
	if strings.TrimSpace(m.QuestionText) == "" {
		return errors.New("question_text wajib diisi")
	}
	if strings.TrimSpace(m.QuestionOption1) == "" || strings.TrimSpace(m.QuestionOption2) == "" {
		return errors.New("option1 dan option2 wajib diisi")
	}
	if m.QuestionCorrectOption < 1 || m.QuestionCorrectOption > 4 {
		return errors.New("correct_option harus 1..4")
	}
	if !m.optionSlotFilled(m.QuestionCorrectOption) {
		return errors.New("correct_option menunjuk slot opsi yang kosong")
	}
	return nil
}
