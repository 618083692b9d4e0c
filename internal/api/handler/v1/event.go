package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/request"
	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/response"
	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

const msgEventNotFound = "Event not found"

var errInvalidEventID = errors.New("eventID must be a valid UUID")

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
	UpdateEventStatus(ctx context.Context, id uuid.UUID, status domain.EventStatus) (domain.Event, error)
}

type EventStatsService interface {
	GetEventStats(ctx context.Context, eventID uuid.UUID) (domain.EventStats, error)
}

type EventHandler struct {
	svc   EventService
	stats EventStatsService
}

func NewEventHandler(svc EventService, stats EventStatsService) *EventHandler {
	return &EventHandler{
		svc:   svc,
		stats: stats,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      201      {object}   response.CreateEventResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), req.Event())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.CreateEventResponse{
		Success: true,
		EventID: event.ID,
	})
}

// HandleGetEvents godoc
// @Summary      List events by date
// @Tags         events
// @Produce      json
// @Success      200      {object}   response.EventsResponse
// @Failure      500      {object}   response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.GetEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventsResponse{
		Success: true,
		Events:  events,
	})
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string  true  "event ID"
// @Success      200      {object}   response.EventResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgEventNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventResponse{
		Success: true,
		Event:   event,
	})
}

// HandleUpdateEventStatus godoc
// @Summary      Move an event forward in its lifecycle
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      string  true  "event ID"
// @Param        request   body      request.UpdateEventStatusRequest true "request body"
// @Success      200      {object}   response.EventResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/status [patch]
func (h *EventHandler) HandleUpdateEventStatus(ctx *gin.Context) {
	id, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateEventStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.UpdateEventStatus(ctx.Request.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(msgEventNotFound))
		case errors.Is(err, service.ErrInvalidStatusTransition):
			response.RenderErr(ctx, response.ErrConflict("Invalid event status transition"))
		default:
			err = fmt.Errorf("v1.HandleUpdateEventStatus -> h.svc.UpdateEventStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.EventResponse{
		Success: true,
		Event:   event,
	})
}

// HandleGetEventStats godoc
// @Summary      Attendance statistics of an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        eventID   path      string  true  "event ID"
// @Success      200      {object}   response.EventStatsResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/stats [get]
func (h *EventHandler) HandleGetEventStats(ctx *gin.Context) {
	id, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	stats, err := h.stats.GetEventStats(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgEventNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetEventStats -> h.stats.GetEventStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventStatsResponse{
		Success: true,
		Stats:   stats,
	})
}

func eventIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidEventID))
		return uuid.Nil, false
	}

	return id, true
}
