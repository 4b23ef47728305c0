package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type UserModel struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserUsername     string    `gorm:"column:user_username;type:varchar(120);not null;uniqueIndex:uq_users_username" json:"user_username"`
	UserPasswordHash string    `gorm:"column:user_password_hash;type:varchar(256);not null" json:"-"`
	UserFullName     string    `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`

	UserQualification *string    `gorm:"column:user_qualification;type:varchar(100)" json:"user_qualification,omitempty"`
	UserDOB           *time.Time `gorm:"column:user_dob;type:date" json:"user_dob,omitempty"`

	// 'admin' atau 'user'
	UserRole string `gorm:"column:user_role;type:varchar(10);not null;default:user" json:"user_role"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

// TableName overrides the table name used by GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) IsAdmin() bool { return m.UserRole == RoleAdmin }
