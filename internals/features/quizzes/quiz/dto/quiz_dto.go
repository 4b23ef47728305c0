package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "quizmaster_backend/internals/features/quizzes/quiz/model"
)

// format tanggal quiz di body & response
const quizDateLayout = "2006-01-02"

type CreateQuizRequest struct {
	// opsional; default tanggal pembuatan
	Date            *string `json:"date"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Remarks         *string `json:"remarks"`
}

func (r *CreateQuizRequest) Normalize() {
	if r.Remarks != nil {
		v := strings.TrimSpace(*r.Remarks)
		if v == "" {
			r.Remarks = nil
		} else {
			r.Remarks = &v
		}
	}
}

// chapter_id datang dari path, bukan body
func (r CreateQuizRequest) ToModel(chapterID uuid.UUID) (m.QuizModel, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		t, err := time.Parse(quizDateLayout, strings.TrimSpace(*r.Date))
		if err != nil {
			return m.QuizModel{}, err
		}
		date = t
	}
	return m.QuizModel{
		QuizChapterID:       chapterID,
		QuizDate:            date,
		QuizDurationMinutes: r.DurationMinutes,
		QuizRemarks:         r.Remarks,
	}, nil
}

type UpdateQuizRequest struct {
	Date            *string `json:"date"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	Remarks         *string `json:"remarks"`
}

func (r UpdateQuizRequest) Apply(mo *m.QuizModel) error {
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		t, err := time.Parse(quizDateLayout, strings.TrimSpace(*r.Date))
		if err != nil {
			return err
		}
		mo.QuizDate = t
	}
	if r.DurationMinutes != nil {
		mo.QuizDurationMinutes = *r.DurationMinutes
	}
	if r.Remarks != nil {
		v := strings.TrimSpace(*r.Remarks)
		mo.QuizRemarks = &v
	}
	return nil
}

type QuizResponse struct {
	ID              uuid.UUID `json:"id"`
	ChapterID       uuid.UUID `json:"chapter_id"`
	Date            string    `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	Remarks         *string   `json:"remarks,omitempty"`
}

func FromQuizModel(mo m.QuizModel) QuizResponse {
	return QuizResponse{
		ID:              mo.QuizID,
		ChapterID:       mo.QuizChapterID,
		Date:            mo.QuizDate.Format(quizDateLayout),
		DurationMinutes: mo.QuizDurationMinutes,
		Remarks:         mo.QuizRemarks,
	}
}

func FromQuizModels(rows []m.QuizModel) []QuizResponse {
	out := make([]QuizResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromQuizModel(rows[i]))
	}
	return out
}

// Listing ringkas untuk sisi user.
type QuizListItem struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
}

func ToQuizListItems(rows []m.QuizModel) []QuizListItem {
	out := make([]QuizListItem, 0, len(rows))
	for i := range rows {
		out = append(out, QuizListItem{
			ID:              rows[i].QuizID,
			Date:            rows[i].QuizDate.Format(quizDateLayout),
			DurationMinutes: rows[i].QuizDurationMinutes,
		})
	}
	return out
}
