package dto

import (
	"time"

	"github.com/google/uuid"

	m "quizmaster_backend/internals/features/users/user/model"
)

/* =========================================================
   REGISTER / LOGIN
   ========================================================= */

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=120"`
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=6"`

	Qualification *string `json:"qualification" validate:"omitempty,max=100"`
	// format dd/mm/yyyy
	DOB  *string `json:"dob"`
	Role *string `json:"role" validate:"omitempty,oneof=admin user"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	FullName      string     `json:"full_name"`
	Qualification *string    `json:"qualification,omitempty"`
	DOB           *string    `json:"dob,omitempty"`
	Role          string     `json:"role"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

func FromUserModel(mo m.UserModel) UserResponse {
	var dob *string
	if mo.UserDOB != nil {
		s := mo.UserDOB.Format("2006-01-02")
		dob = &s
	}
	created := mo.UserCreatedAt
	return UserResponse{
		ID:            mo.UserID,
		Username:      mo.UserUsername,
		FullName:      mo.UserFullName,
		Qualification: mo.UserQualification,
		DOB:           dob,
		Role:          mo.UserRole,
		CreatedAt:     &created,
	}
}

// FromUserModels: listing admin, tanpa data password (field hash memang
// tidak pernah diserialisasi).
func FromUserModels(rows []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromUserModel(rows[i]))
	}
	return out
}
