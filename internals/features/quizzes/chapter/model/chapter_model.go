package model

import (
	"time"

	"github.com/google/uuid"
)

type ChapterModel struct {
	ChapterID          uuid.UUID `gorm:"column:chapter_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"chapter_id"`
	ChapterSubjectID   uuid.UUID `gorm:"column:chapter_subject_id;type:uuid;not null;index:idx_chapters_subject" json:"chapter_subject_id"`
	ChapterName        string    `gorm:"column:chapter_name;type:varchar(150);not null" json:"chapter_name"`
	ChapterDescription *string   `gorm:"column:chapter_description;type:text" json:"chapter_description,omitempty"`

	ChapterCreatedAt time.Time `gorm:"column:chapter_created_at;not null;autoCreateTime" json:"chapter_created_at"`
	ChapterUpdatedAt time.Time `gorm:"column:chapter_updated_at;not null;autoUpdateTime" json:"chapter_updated_at"`
}

// TableName overrides the table name used by GORM.
func (ChapterModel) TableName() string {
	return "chapters"
}
