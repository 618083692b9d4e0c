package v1

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/request"
	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/response"
	"github.com/zunde-outreach/checkin-api/internal/pkg/ticket"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

const (
	msgInvalidTicket      = "Invalid ticket ID"
	msgAlreadyCheckedIn   = "Participant already checked in"
	msgNoCheckInRecord    = "No check-in record found"
	msgCheckInSuccessful  = "Check-in successful"
	msgCheckOutSuccessful = "Check-out successful"
	maxScanUploadBytes    = 5 << 20
	scanImageFormField    = "image"
)

var (
	errMissingScanImage = errors.New("an image file is required in the \"image\" field")
	errUnreadableImage  = errors.New("image must be a PNG or JPEG")
	errNoQRCode         = errors.New("no QR code found in image")
)

type CheckInService interface {
	CheckIn(ctx context.Context, input service.CheckInInput) (service.CheckInResult, error)
	CheckOut(ctx context.Context, ticketID string) (service.CheckInResult, error)
}

type CheckInHandler struct {
	svc CheckInService
}

func NewCheckInHandler(svc CheckInService) *CheckInHandler {
	return &CheckInHandler{
		svc: svc,
	}
}

// HandleCheckIn godoc
// @Summary      Check a participant in or out
// @Description  action "checkin" needs busNumber, staffMember and location. action "checkout" only needs ticketId.
// @Tags         checkin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request   body      request.CheckInRequest true "request body"
// @Success      200      {object}   response.CheckInResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /checkin [post]
func (h *CheckInHandler) HandleCheckIn(ctx *gin.Context) {
	var req request.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if req.Action == request.ActionCheckOut {
		h.checkOut(ctx, req.TicketID)
		return
	}

	result, err := h.svc.CheckIn(ctx.Request.Context(), service.CheckInInput{
		TicketID:    req.TicketID,
		BusNumber:   req.BusNumber,
		StaffMember: req.StaffMember,
		Location:    req.Location,
	})
	if err != nil {
		renderCheckInErr(ctx, fmt.Errorf("v1.HandleCheckIn -> h.svc.CheckIn -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.CheckInResponse{
		Success: true,
		Message: msgCheckInSuccessful,
		Participant: response.CheckInParticipant{
			Name:      result.Participant.FullName,
			TicketID:  result.Participant.TicketID,
			BusNumber: result.Record.BusNumber,
		},
	})
}

func (h *CheckInHandler) checkOut(ctx *gin.Context, ticketID string) {
	result, err := h.svc.CheckOut(ctx.Request.Context(), ticketID)
	if err != nil {
		renderCheckInErr(ctx, fmt.Errorf("v1.HandleCheckIn -> h.svc.CheckOut -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.CheckInResponse{
		Success: true,
		Message: msgCheckOutSuccessful,
		Participant: response.CheckInParticipant{
			Name:     result.Participant.FullName,
			TicketID: result.Participant.TicketID,
		},
	})
}

func renderCheckInErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTicket):
		response.RenderErr(ctx, response.ErrNotFound(msgInvalidTicket))
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		response.RenderErr(ctx, response.ErrConflict(msgAlreadyCheckedIn))
	case errors.Is(err, service.ErrNoCheckInRecord):
		response.RenderErr(ctx, response.ErrConflict(msgNoCheckInRecord))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleScan godoc
// @Summary      Read the ticket ID from a photo of a QR code
// @Tags         checkin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image   formData   file  true  "PNG or JPEG image"
// @Success      200      {object}   response.ScanResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /checkin/scan [post]
func (h *CheckInHandler) HandleScan(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxScanUploadBytes)

	header, err := ctx.FormFile(scanImageFormField)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingScanImage))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errMissingScanImage))
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errUnreadableImage))
		return
	}

	ticketID, err := ticket.DecodeQRCode(img)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errNoQRCode))
		return
	}

	if !ticket.IsValidID(ticketID) {
		response.RenderErr(ctx, response.ErrNotFound(msgInvalidTicket))
		return
	}

	ctx.JSON(http.StatusOK, response.ScanResponse{
		Success:  true,
		TicketID: ticketID,
	})
}
