package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hoangtm/examform/internal/dto"
	"github.com/hoangtm/examform/internal/model"
	"github.com/hoangtm/examform/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WebhookService stores submissions posted by the form provider. A delivery
// for the same exam and student always produces a new row; the provider owns
// delivery retries, not this service.
type WebhookService interface {
	IngestSubmission(examID uint, payload dto.TallyWebhookPayload) (*dto.SubmissionResponseDTO, error)
}

type webhookService struct {
	examRepo       repository.ExamRepository
	submissionRepo repository.SubmissionRepository
}

func NewWebhookService(examRepo repository.ExamRepository, submissionRepo repository.SubmissionRepository) WebhookService {
	return &webhookService{examRepo: examRepo, submissionRepo: submissionRepo}
}

func (s *webhookService) IngestSubmission(examID uint, payload dto.TallyWebhookPayload) (*dto.SubmissionResponseDTO, error) {
	if !payload.HasData() {
		return nil, ErrInvalidPayload
	}

	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to look up exam for webhook")
		return nil, fmt.Errorf("error looking up exam %d: %w", examID, err)
	}

	var data dto.WebhookData
	if err := json.Unmarshal(payload.Data, &data); err != nil {
		return nil, ErrInvalidPayload
	}

	submission := &model.Submission{
		ExamID:    exam.ID,
		StudentID: extractStudentID(data.Fields),
		Answers:   datatypes.JSON(payload.Data), // entire data object, verbatim
		Status:    model.SubmissionStatusPending,
	}
	if err := s.submissionRepo.Create(submission); err != nil {
		log.Error().Err(err).Uint("examID", exam.ID).Msg("Failed to persist submission")
		return nil, fmt.Errorf("error storing submission: %w", err)
	}

	log.Info().Uint("examID", exam.ID).Uint("submissionID", submission.ID).Str("studentID", submission.StudentID).Str("eventID", payload.EventID).Msg("Submission stored")

	var resp dto.SubmissionResponseDTO
	if err := copier.Copy(&resp, submission); err != nil {
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}
	return &resp, nil
}

// extractStudentID returns the value of the first EMAIL-typed field, then
// of the first field keyed or labelled "email", and finally the anonymous
// sentinel. Only the first field matching each rule is considered.
func extractStudentID(fields []dto.WebhookField) string {
	for _, field := range fields {
		if field.Type == dto.FieldTypeEmail {
			if v := field.StringValue(); v != "" {
				return v
			}
			break
		}
	}
	for _, field := range fields {
		if field.Key == "email" || strings.Contains(strings.ToLower(field.Label), "email") {
			if v := field.StringValue(); v != "" {
				return v
			}
			break
		}
	}
	return "anonymous"
}
