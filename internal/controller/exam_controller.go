package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hoangtm/examform/internal/dto"
	"github.com/hoangtm/examform/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// ListExams godoc
// @Summary List all exams
// @Description Get all exams with their submission counts, newest first.
// @Tags exams
// @Produce json
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams()
	if err != nil {
		log.Error().Err(err).Msg("ListExams: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch exams"})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// CreateExam godoc
// @Summary Create a new exam
// @Description Create an exam backed by a Tally form. The form's structure is fetched once and frozen as the exam's schema snapshot.
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam data"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 409 {object} dto.ErrorResponse "An exam already exists for this form"
// @Failure 500 {object} dto.ErrorResponse "Form fetch or database failure"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateExam: Failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields: tally_form_id, title"})
		return
	}

	exam, err := c.examService.CreateExam(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateExam):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Exam with this Tally form ID already exists"})
		default:
			log.Error().Err(err).Str("tallyFormID", req.TallyFormID).Msg("CreateExam: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create exam"})
		}
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// GetExam godoc
// @Summary Get exam details
// @Description Get one exam with its rendered questions and submissions, newest submission first.
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid exam ID format"})
		return
	}

	exam, err := c.examService.GetExamDetails(uint(examID))
	if err != nil {
		if errors.Is(err, service.ErrExamNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Exam not found"})
			return
		}
		log.Error().Err(err).Uint64("examID", examID).Msg("GetExam: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch exam"})
		return
	}
	ctx.JSON(http.StatusOK, exam)
}
