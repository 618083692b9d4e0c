package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	ActionCheckIn  = "checkin"
	ActionCheckOut = "checkout"
)

var errCheckInDetails = errors.New("busNumber, staffMember and location are required for check-in")

type CheckInRequest struct {
	TicketID    string `json:"ticketId" example:"ZUN-ABC123-XYZ789"`
	BusNumber   string `json:"busNumber" example:"Bus A"`
	StaffMember string `json:"staffMember" example:"Tendai"`
	Location    string `json:"location" example:"Central Church"`
	Action      string `json:"action" example:"checkin"`
}

func (req *CheckInRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.TicketID, validation.Required),
		validation.Field(&req.Action, validation.Required, validation.In(ActionCheckIn, ActionCheckOut)),
	)
	if err != nil {
		return err
	}

	if req.Action == ActionCheckIn &&
		(strings.TrimSpace(req.BusNumber) == "" ||
			strings.TrimSpace(req.StaffMember) == "" ||
			strings.TrimSpace(req.Location) == "") {
		return errCheckInDetails
	}

	return nil
}
