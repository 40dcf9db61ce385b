package dto

import "time"

// ExamCreateDTO is the request body for creating an exam from a Tally form.
type ExamCreateDTO struct {
	TallyFormID string `json:"tally_form_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
}

// ExamSummaryDTO is used for listing exams on the teacher dashboard.
type ExamSummaryDTO struct {
	ID              uint      `json:"id"`
	TallyFormID     string    `json:"tally_form_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	SubmissionCount int       `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExamResponseDTO is returned after creation and from the detail endpoint.
// Questions are rendered from the schema snapshot captured at creation time.
type ExamResponseDTO struct {
	ID          uint                    `json:"id"`
	TallyFormID string                  `json:"tally_form_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	Questions   []DisplayQuestionDTO    `json:"questions,omitempty"`
	Submissions []SubmissionResponseDTO `json:"submissions,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

// DisplayQuestionDTO is one logical question reconstructed from the form's
// presentation blocks, with its answer options in display order.
type DisplayQuestionDTO struct {
	Index     int      `json:"index"`
	Text      string   `json:"text"`
	GroupType string   `json:"group_type"`
	Options   []string `json:"options,omitempty"`
}
