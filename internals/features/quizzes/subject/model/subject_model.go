package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	SubjectID          uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	SubjectName        string    `gorm:"column:subject_name;type:varchar(150);not null;uniqueIndex:uq_subjects_name" json:"subject_name"`
	SubjectDescription *string   `gorm:"column:subject_description;type:text" json:"subject_description,omitempty"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
}

// TableName overrides the table name used by GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}
