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

type WebhookController struct {
	webhookService service.WebhookService
}

func NewWebhookController(webhookService service.WebhookService) *WebhookController {
	return &WebhookController{webhookService: webhookService}
}

// HandleFormWebhook godoc
// @Summary Receive a form submission webhook
// @Description Called by the form provider when a student completes the embedded form. Stores one submission per delivery; duplicates are not suppressed.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID the form is bound to"
// @Param payload body dto.TallyWebhookPayload true "Provider webhook payload"
// @Success 200 {object} dto.WebhookAckDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed payload or missing data object"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /webhooks/form/{exam_id} [post]
func (c *WebhookController) HandleFormWebhook(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Exam not found"})
		return
	}

	var payload dto.TallyWebhookPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Uint64("examID", examID).Msg("HandleFormWebhook: Malformed webhook body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payload"})
		return
	}

	submission, err := c.webhookService.IngestSubmission(uint(examID), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPayload):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payload"})
		case errors.Is(err, service.ErrExamNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Exam not found"})
		default:
			log.Error().Err(err).Uint64("examID", examID).Msg("HandleFormWebhook: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.WebhookAckDTO{Success: true, SubmissionID: submission.ID})
}
