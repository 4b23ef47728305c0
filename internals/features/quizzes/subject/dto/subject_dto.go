package dto

import (
	"strings"

	"github.com/google/uuid"

	m "quizmaster_backend/internals/features/quizzes/subject/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSubjectRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Description *string `json:"description"`
}

func (r *CreateSubjectRequest) Normalize() {
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

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		SubjectName:        r.Name,
		SubjectDescription: r.Description,
	}
}

/* =========================================================
   UPDATE (partial): field yang tidak dikirim mempertahankan nilai lama
   ========================================================= */

type UpdateSubjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description"`
}

func (r *UpdateSubjectRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

func (r UpdateSubjectRequest) Apply(mo *m.SubjectModel) {
	if r.Name != nil {
		mo.SubjectName = *r.Name
	}
	if r.Description != nil {
		mo.SubjectDescription = r.Description
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SubjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

func FromSubjectModel(mo m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		ID:          mo.SubjectID,
		Name:        mo.SubjectName,
		Description: mo.SubjectDescription,
	}
}

func FromSubjectModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSubjectModel(rows[i]))
	}
	return out
}

// Listing ringkas untuk sisi user: hanya id + name.
type SubjectListItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func ToSubjectListItems(rows []m.SubjectModel) []SubjectListItem {
	out := make([]SubjectListItem, 0, len(rows))
	for i := range rows {
		out = append(out, SubjectListItem{ID: rows[i].SubjectID, Name: rows[i].SubjectName})
	}
	return out
}
