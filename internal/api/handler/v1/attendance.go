package v1

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/response"
	"github.com/zunde-outreach/checkin-api/internal/domain"
)

type AttendanceService interface {
	GetCheckIns(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceEntry, error)
}

type AttendanceHandler struct {
	svc AttendanceService
}

func NewAttendanceHandler(svc AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		svc: svc,
	}
}

// HandleGetCheckIns godoc
// @Summary      Check-in history, newest first
// @Tags         checkin
// @Produce      json
// @Security     BearerAuth
// @Param        eventId   query     string  false  "event ID"
// @Param        search    query     string  false  "matches participant name or ticket ID"
// @Success      200      {object}   response.CheckInsResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /checkins [get]
func (h *AttendanceHandler) HandleGetCheckIns(ctx *gin.Context) {
	eventID, ok := optionalEventIDQuery(ctx)
	if !ok {
		return
	}

	records, err := h.svc.GetCheckIns(ctx.Request.Context(), domain.AttendanceFilter{
		EventID: eventID,
		Search:  strings.TrimSpace(ctx.Query("search")),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCheckIns -> h.svc.GetCheckIns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if records == nil {
		records = []domain.AttendanceEntry{}
	}

	ctx.JSON(http.StatusOK, response.CheckInsResponse{
		Success: true,
		Records: records,
	})
}
