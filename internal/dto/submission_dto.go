package dto

import (
	"encoding/json"
	"time"
)

// SubmissionResponseDTO exposes one stored submission to the teacher UI.
// Answers is the webhook data object exactly as received.
type SubmissionResponseDTO struct {
	ID          uint            `json:"id"`
	ExamID      uint            `json:"exam_id"`
	StudentID   string          `json:"student_id"`
	Answers     json.RawMessage `json:"answers,omitempty" swaggertype:"object"`
	Status      string          `json:"status"`
	Score       *float64        `json:"score,omitempty"`
	Feedback    *string         `json:"feedback,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// GradeSubmissionDTO is the grading request body. Score is accepted as a
// JSON number or a numeric string; the service coerces it.
type GradeSubmissionDTO struct {
	Score    interface{} `json:"score"`
	Feedback *string     `json:"feedback"`
}
