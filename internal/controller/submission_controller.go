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

type SubmissionController struct {
	gradingService service.GradingService
}

func NewSubmissionController(gradingService service.GradingService) *SubmissionController {
	return &SubmissionController{gradingService: gradingService}
}

// GradeSubmission godoc
// @Summary Grade a submission
// @Description Set score and feedback on a submission and mark it GRADED. Regrading overwrites the previous grade.
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param grade body dto.GradeSubmissionDTO true "Score and feedback"
// @Success 200 {object} dto.SubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid submission ID or non-numeric score"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions/{id}/grade [post]
func (c *SubmissionController) GradeSubmission(ctx *gin.Context) {
	submissionID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid submission ID format"})
		return
	}

	var req dto.GradeSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GradeSubmission: Failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	submission, err := c.gradingService.GradeSubmission(uint(submissionID), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Submission not found"})
		case errors.Is(err, service.ErrInvalidScore):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Score must be a numeric value"})
		default:
			log.Error().Err(err).Uint64("submissionID", submissionID).Msg("GradeSubmission: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to grade submission"})
		}
		return
	}
	ctx.JSON(http.StatusOK, submission)
}
