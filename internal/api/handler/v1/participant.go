package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/request"
	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/response"
	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

var errInvalidStatusFilter = errors.New("status must be one of registered, checked-in, checked-out, no-show")

type RegistrationService interface {
	Register(ctx context.Context, input service.RegistrationInput) (service.RegistrationResult, error)
}

type ParticipantService interface {
	GetParticipants(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error)
	GetParticipantByTicketID(ctx context.Context, ticketID string) (domain.Participant, error)
}

type ParticipantHandler struct {
	registration RegistrationService
	svc          ParticipantService
}

func NewParticipantHandler(registration RegistrationService, svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		registration: registration,
		svc:          svc,
	}
}

// HandleRegisterParticipant godoc
// @Summary      Register a participant for an event
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request   body      request.RegisterParticipantRequest true "request body"
// @Success      201      {object}   response.RegistrationResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participants [post]
func (h *ParticipantHandler) HandleRegisterParticipant(ctx *gin.Context) {
	var req request.RegisterParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.registration.Register(ctx.Request.Context(), req.Input())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingRequiredFields):
			response.RenderErr(ctx, response.ErrBadRequest(request.ErrMissingRegistrationFields))
		case errors.Is(err, service.ErrInvalidDepartureLocation):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidDepartureLocation))
		default:
			err = fmt.Errorf("v1.HandleRegisterParticipant -> h.registration.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.RegistrationResponse{
		Success:       true,
		ParticipantID: result.Participant.ID,
		TicketID:      result.Participant.TicketID,
		QRCode:        result.Participant.QRCode,
	})
}

// HandleGetParticipants godoc
// @Summary      List participants
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        eventId   query     string  false  "event ID"
// @Param        status    query     string  false  "participant status"
// @Param        email     query     string  false  "exact email"
// @Param        search    query     string  false  "matches name, email or ticket ID"
// @Success      200      {object}   response.ParticipantsResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participants [get]
func (h *ParticipantHandler) HandleGetParticipants(ctx *gin.Context) {
	eventID, ok := optionalEventIDQuery(ctx)
	if !ok {
		return
	}

	filter := domain.ParticipantFilter{
		EventID: eventID,
		Status:  domain.ParticipantStatus(ctx.Query("status")),
		Email:   strings.TrimSpace(ctx.Query("email")),
		Search:  strings.TrimSpace(ctx.Query("search")),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidStatusFilter))
		return
	}

	participants, err := h.svc.GetParticipants(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetParticipants -> h.svc.GetParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ParticipantsResponse{
		Success:      true,
		Participants: participants,
	})
}

// HandleGetParticipantByTicket godoc
// @Summary      Get a participant by ticket ID
// @Tags         participants
// @Produce      json
// @Param        ticketID   path      string  true  "ticket ID"
// @Success      200      {object}   response.ParticipantResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participants/ticket/{ticketID} [get]
func (h *ParticipantHandler) HandleGetParticipantByTicket(ctx *gin.Context) {
	participant, err := h.svc.GetParticipantByTicketID(ctx.Request.Context(), ctx.Param("ticketID"))
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgInvalidTicket))
			return
		}

		err = fmt.Errorf("v1.HandleGetParticipantByTicket -> h.svc.GetParticipantByTicketID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ParticipantResponse{
		Success:     true,
		Participant: participant,
	})
}

// optionalEventIDQuery reads ?eventId=. A missing value yields nil.
func optionalEventIDQuery(ctx *gin.Context) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(ctx.Query("eventId"))
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("eventId must be a valid UUID")))
		return nil, false
	}

	return &id, true
}
