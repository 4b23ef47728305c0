package dto

import (
	"strings"

	"github.com/google/uuid"

	m "quizmaster_backend/internals/features/quizzes/question/model"
)

type CreateQuestionRequest struct {
	QuestionText  string  `json:"question_text" validate:"required,min=1"`
	Option1       string  `json:"option1" validate:"required,min=1,max=255"`
	Option2       string  `json:"option2" validate:"required,min=1,max=255"`
	Option3       *string `json:"option3" validate:"omitempty,max=255"`
	Option4       *string `json:"option4" validate:"omitempty,max=255"`
	CorrectOption int     `json:"correct_option" validate:"required,min=1,max=4"`
}

func trimOpt(p **string) {
	if *p == nil {
		return
	}
	v := strings.TrimSpace(**p)
	if v == "" {
		*p = nil
		return
	}
	*p = &v
}

func (r *CreateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.Option1 = strings.TrimSpace(r.Option1)
	r.Option2 = strings.TrimSpace(r.Option2)
	trimOpt(&r.Option3)
	trimOpt(&r.Option4)
}

// quiz_id datang dari path, bukan body
func (r CreateQuestionRequest) ToModel(quizID uuid.UUID) m.QuestionModel {
	return m.QuestionModel{
		QuestionQuizID:        quizID,
		QuestionText:          r.QuestionText,
		QuestionOption1:       r.Option1,
		QuestionOption2:       r.Option2,
		QuestionOption3:       r.Option3,
		QuestionOption4:       r.Option4,
		QuestionCorrectOption: r.CorrectOption,
	}
}

type UpdateQuestionRequest struct {
	QuestionText  *string `json:"question_text" validate:"omitempty,min=1"`
	Option1       *string `json:"option1" validate:"omitempty,min=1,max=255"`
	Option2       *string `json:"option2" validate:"omitempty,min=1,max=255"`
	Option3       *string `json:"option3" validate:"omitempty,max=255"`
	Option4       *string `json:"option4" validate:"omitempty,max=255"`
	CorrectOption *int    `json:"correct_option" validate:"omitempty,min=1,max=4"`
}

func (r UpdateQuestionRequest) Apply(mo *m.QuestionModel) {
	if r.QuestionText != nil {
		mo.QuestionText = strings.TrimSpace(*r.QuestionText)
	}
	if r.Option1 != nil {
		mo.QuestionOption1 = strings.TrimSpace(*r.Option1)
	}
	if r.Option2 != nil {
		mo.QuestionOption2 = strings.TrimSpace(*r.Option2)
	}
	if r.Option3 != nil {
		v := strings.TrimSpace(*r.Option3)
		mo.QuestionOption3 = &v
	}
	if r.Option4 != nil {
		v := strings.TrimSpace(*r.Option4)
		mo.QuestionOption4 = &v
	}
	if r.CorrectOption != nil {
		mo.QuestionCorrectOption = *r.CorrectOption
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

// Admin view: termasuk kunci jawaban.
type QuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	QuestionText  string    `json:"question_text"`
	Option1       string    `json:"option1"`
	Option2       string    `json:"option2"`
	Option3       *string   `json:"option3,omitempty"`
	Option4       *string   `json:"option4,omitempty"`
	CorrectOption int       `json:"correct_option"`
}

func FromQuestionModel(mo m.QuestionModel) QuestionResponse {
	return QuestionResponse{
		ID:            mo.QuestionID,
		QuizID:        mo.QuestionQuizID,
		QuestionText:  mo.QuestionText,
		Option1:       mo.QuestionOption1,
		Option2:       mo.QuestionOption2,
		Option3:       mo.QuestionOption3,
		Option4:       mo.QuestionOption4,
		CorrectOption: mo.QuestionCorrectOption,
	}
}

func FromQuestionModels(rows []m.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromQuestionModel(rows[i]))
	}
	return out
}

// User view: kunci jawaban TIDAK pernah ikut.
type QuestionUserItem struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
}

func ToQuestionUserItems(rows []m.QuestionModel) []QuestionUserItem {
	out := make([]QuestionUserItem, 0, len(rows))
	for i := range rows {
		out = append(out, QuestionUserItem{
			ID:       rows[i].QuestionID,
			Question: rows[i].QuestionText,
			Options:  rows[i].Options(),
		})
	}
	return out
}
