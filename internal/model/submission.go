package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SubmissionStatusPending = "PENDING"
	SubmissionStatusGraded  = "GRADED"
)

// Submission is one received answer set for an Exam. Answers holds the
// webhook's data object verbatim. StudentID is a best-effort email, or
// "anonymous" when the payload carries none.
type Submission struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ExamID      uint           `json:"exam_id" gorm:"not null;index"`
	StudentID   string         `json:"student_id" gorm:"not null"`
	Answers     datatypes.JSON `json:"answers,omitempty" gorm:"type:json"`
	Status      string         `json:"status" gorm:"default:'PENDING'"` // "PENDING", "GRADED"
	Score       *float64       `json:"score,omitempty"`
	Feedback    *string        `json:"feedback,omitempty"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
