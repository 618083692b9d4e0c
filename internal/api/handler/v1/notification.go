package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/request"
	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/response"
	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

type NotificationService interface {
	SendReminders(ctx context.Context, eventID uuid.UUID, prefs *domain.NotificationPreference) (service.ReminderReport, error)
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
	}
}

// HandleSendNotifications godoc
// @Summary      Send event reminders to registered participants
// @Description  An interrupted run answers success false with the partial counts.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.NotificationRequest true "request body"
// @Success      200      {object}   response.NotificationResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /notifications [post]
func (h *NotificationHandler) HandleSendNotifications(ctx *gin.Context) {
	var req request.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.svc.SendReminders(ctx.Request.Context(), req.EventUUID(), req.Preference())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(msgEventNotFound))
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			zap.L().Warn("event reminders interrupted",
				zap.String("event_id", req.EventID),
				zap.Int("sent", report.Sent),
				zap.Int("total", report.Total),
				zap.Error(err),
			)
			ctx.JSON(http.StatusOK, reminderResponse(false,
				fmt.Sprintf("Sent %d of %d notifications before the run was interrupted", report.Sent, report.Total),
				report,
			))
		default:
			err = fmt.Errorf("v1.HandleSendNotifications -> h.svc.SendReminders -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	if report.Total == 0 {
		ctx.JSON(http.StatusOK, reminderResponse(true, "No participants found for this event", report))
		return
	}

	ctx.JSON(http.StatusOK, reminderResponse(true,
		fmt.Sprintf("Sent %d of %d notifications", report.Sent, report.Total),
		report,
	))
}

func reminderResponse(success bool, message string, report service.ReminderReport) response.NotificationResponse {
	results := report.Outcomes
	if results == nil {
		results = []service.ReminderOutcome{}
	}

	return response.NotificationResponse{
		Success: success,
		Message: message,
		Sent:    report.Sent,
		Total:   report.Total,
		Results: results,
	}
}
