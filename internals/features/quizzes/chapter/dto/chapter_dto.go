package dto

import (
	"strings"

	"github.com/google/uuid"

	m "quizmaster_backend/internals/features/quizzes/chapter/model"
)

type CreateChapterRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Description *string `json:"description"`
}

func (r *CreateChapterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

// subject_id datang dari path, bukan body
func (r CreateChapterRequest) ToModel(subjectID uuid.UUID) m.ChapterModel {
	return m.ChapterModel{
		ChapterSubjectID:   subjectID,
		ChapterName:        r.Name,
		ChapterDescription: r.Description,
	}
}

type UpdateChapterRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description"`
}

func (r *UpdateChapterRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

func (r UpdateChapterRequest) Apply(mo *m.ChapterModel) {
	if r.Name != nil {
		mo.ChapterName = *r.Name
	}
	if r.Description != nil {
		mo.ChapterDescription = r.Description
	}
}

type ChapterResponse struct {
	ID          uuid.UUID `json:"id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

func FromChapterModel(mo m.ChapterModel) ChapterResponse {
	return ChapterResponse{
		ID:          mo.ChapterID,
		SubjectID:   mo.ChapterSubjectID,
		Name:        mo.ChapterName,
		Description: mo.ChapterDescription,
	}
}

func FromChapterModels(rows []m.ChapterModel) []ChapterResponse {
	out := make([]ChapterResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromChapterModel(rows[i]))
	}
	return out
}
