package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exam binds one Tally form to a title/description. SchemaSnapshot is the
// form document as fetched at creation time; it is never re-synced.
type Exam struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	TallyFormID    string         `json:"tally_form_id" gorm:"not null;uniqueIndex"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description,omitempty"`
	SchemaSnapshot datatypes.JSON `json:"schema_snapshot,omitempty" gorm:"type:json"`
	Submissions    []Submission   `json:"submissions,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
