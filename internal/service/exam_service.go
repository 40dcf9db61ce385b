package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoangtm/examform/internal/dto"
	"github.com/hoangtm/examform/internal/model"
	"github.com/hoangtm/examform/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamService interface {
	CreateExam(ctx context.Context, req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	GetAllExams() ([]dto.ExamSummaryDTO, error)
	GetExamDetails(examID uint) (*dto.ExamResponseDTO, error)
}

type examService struct {
	examRepo  repository.ExamRepository
	formSvc   TallyFormService
	renderSvc FormRenderService
}

func NewExamService(examRepo repository.ExamRepository, formSvc TallyFormService, renderSvc FormRenderService) ExamService {
	return &examService{examRepo: examRepo, formSvc: formSvc, renderSvc: renderSvc}
}

// CreateExam fetches the form document and stores it as the exam's frozen
// schema snapshot. One form backs at most one exam; later changes to the
// form on the provider side are not picked up.
func (s *examService) CreateExam(ctx context.Context, req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	if _, err := s.examRepo.FindByTallyFormID(req.TallyFormID); err == nil {
		return nil, ErrDuplicateExam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("tallyFormID", req.TallyFormID).Msg("Failed to check for existing exam")
		return nil, fmt.Errorf("error checking for existing exam: %w", err)
	}

	snapshot, err := s.formSvc.GetForm(ctx, req.TallyFormID)
	if err != nil {
		log.Error().Err(err).Str("tallyFormID", req.TallyFormID).Msg("Failed to fetch form document")
		return nil, err
	}

	exam := model.Exam{
		TallyFormID:    req.TallyFormID,
		Title:          req.Title,
		Description:    req.Description,
		SchemaSnapshot: datatypes.JSON(snapshot),
	}
	if err := s.examRepo.Create(&exam); err != nil {
		// Backstop for a concurrent insert slipping past the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateExam
		}
		log.Error().Err(err).Str("tallyFormID", req.TallyFormID).Msg("Failed to create exam in database")
		return nil, fmt.Errorf("database error creating exam: %w", err)
	}

	return s.toExamResponse(&exam)
}

func (s *examService) GetAllExams() ([]dto.ExamSummaryDTO, error) {
	examsWithCount, err := s.examRepo.FindAllWithSubmissionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get exams with submission count from repository")
		return nil, fmt.Errorf("error fetching exams: %w", err)
	}

	dtos := make([]dto.ExamSummaryDTO, 0, len(examsWithCount))
	for _, ewc := range examsWithCount {
		dtos = append(dtos, dto.ExamSummaryDTO{
			ID:              ewc.Exam.ID,
			TallyFormID:     ewc.Exam.TallyFormID,
			Title:           ewc.Exam.Title,
			Description:     ewc.Exam.Description,
			SubmissionCount: ewc.SubmissionCount,
			CreatedAt:       ewc.Exam.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *examService) GetExamDetails(examID uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithSubmissions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to get exam details from repository")
		return nil, fmt.Errorf("error fetching exam %d: %w", examID, err)
	}
	return s.toExamResponse(exam)
}

func (s *examService) toExamResponse(exam *model.Exam) (*dto.ExamResponseDTO, error) {
	var resp dto.ExamResponseDTO
	if err := copier.Copy(&resp, exam); err != nil {
		log.Error().Err(err).Msg("Failed to copy Exam model to ExamResponseDTO")
		return nil, fmt.Errorf("error preparing exam response: %w", err)
	}
	resp.Questions = s.renderSvc.RenderQuestions(exam.SchemaSnapshot)
	return &resp, nil
}
