package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hoangtm/examform/internal/dto"
	"github.com/hoangtm/examform/internal/model"
	"github.com/hoangtm/examform/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GradingService applies a teacher's score and feedback to one submission.
// Grading is destructive: a second grade overwrites the first with no audit
// trail, and there is no transition back to PENDING.
type GradingService interface {
	GradeSubmission(submissionID uint, req dto.GradeSubmissionDTO) (*dto.SubmissionResponseDTO, error)
}

type gradingService struct {
	submissionRepo repository.SubmissionRepository
}

func NewGradingService(submissionRepo repository.SubmissionRepository) GradingService {
	return &gradingService{submissionRepo: submissionRepo}
}

func (s *gradingService) GradeSubmission(submissionID uint, req dto.GradeSubmissionDTO) (*dto.SubmissionResponseDTO, error) {
	submission, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Failed to look up submission for grading")
		return nil, fmt.Errorf("error looking up submission %d: %w", submissionID, err)
	}

	score, err := coerceScore(req.Score)
	if err != nil {
		return nil, err
	}

	// No range validation on purpose: negative and out-of-scale scores are
	// accepted. An absent score still marks the submission GRADED.
	submission.Score = score
	submission.Feedback = req.Feedback
	submission.Status = model.SubmissionStatusGraded

	if err := s.submissionRepo.Save(submission); err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Failed to save graded submission")
		return nil, fmt.Errorf("error saving graded submission: %w", err)
	}

	log.Info().Uint("submissionID", submission.ID).Interface("score", score).Msg("Submission graded")

	var resp dto.SubmissionResponseDTO
	if err := copier.Copy(&resp, submission); err != nil {
		return nil, fmt.Errorf("error preparing graded submission response: %w", err)
	}
	return &resp, nil
}

// coerceScore accepts the score as a JSON number or a numeric string. A nil
// score is allowed and leaves the stored score empty; anything that does not
// parse to a finite number is rejected.
func coerceScore(value interface{}) (*float64, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil, ErrInvalidScore
		}
		return &parsed, nil
	default:
		return nil, ErrInvalidScore
	}
}
