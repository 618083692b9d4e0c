package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/zunde-outreach/checkin-api/internal/domain"
)

// Accepted by every date field, most precise first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

var (
	errInvalidDate        = errors.New("must be an RFC 3339 timestamp, YYYY-MM-DDTHH:MM or YYYY-MM-DD")
	errDeadlineAfterEvent = errors.New("registrationDeadline must not be after the event date")
	errBlankLocation      = errors.New("departure locations must not be blank")
	errDuplicateLocation  = errors.New("departure locations must be unique")
	errInvalidEventStatus = errors.New("status must be one of upcoming, registration-open, registration-closed, completed")
)

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errInvalidDate
}

func validDate(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	_, err := parseDate(s)
	return err
}

func validLocations(value any) error {
	locations, _ := value.([]string)

	seen := make(map[string]struct{}, len(locations))
	for _, l := range locations {
		l = strings.TrimSpace(l)
		if l == "" {
			return errBlankLocation
		}
		if _, ok := seen[l]; ok {
			return errDuplicateLocation
		}
		seen[l] = struct{}{}
	}

	return nil
}

type CreateEventRequest struct {
	Name                 string   `json:"name" example:"Sunday Outreach"`
	Description          string   `json:"description"`
	Date                 string   `json:"date" example:"2025-03-02T08:00:00+02:00"`
	DepartureLocations   []string `json:"departureLocations" example:"Central Church,North Hall"`
	MaxParticipants      int      `json:"maxParticipants" example:"60"`
	RegistrationDeadline string   `json:"registrationDeadline" example:"2025-02-28"`
}

func (req *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Date, validation.Required, validation.By(validDate)),
		validation.Field(&req.DepartureLocations, validation.Required, validation.By(validLocations)),
		validation.Field(&req.MaxParticipants, validation.Required, validation.Min(1)),
		validation.Field(&req.RegistrationDeadline, validation.Required, validation.By(validDate)),
	)
	if err != nil {
		return err
	}

	date, _ := parseDate(req.Date)
	deadline, _ := parseDate(req.RegistrationDeadline)
	if deadline.After(date) {
		return errDeadlineAfterEvent
	}

	return nil
}

// Event converts a validated request.
func (req *CreateEventRequest) Event() domain.Event {
	date, _ := parseDate(req.Date)
	deadline, _ := parseDate(req.RegistrationDeadline)

	locations := make([]string, len(req.DepartureLocations))
	for i, l := range req.DepartureLocations {
		locations[i] = strings.TrimSpace(l)
	}

	return domain.Event{
		Name:                 strings.TrimSpace(req.Name),
		Description:          req.Description,
		Date:                 date,
		DepartureLocations:   locations,
		MaxParticipants:      req.MaxParticipants,
		RegistrationDeadline: deadline,
		Status:               domain.EventStatusUpcoming,
	}
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" example:"registration-open"`
}

func (req *UpdateEventStatusRequest) Validate() error {
	if err := validation.Validate(req.Status, validation.Required); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if !domain.EventStatus(req.Status).IsValid() {
		return errInvalidEventStatus
	}

	return nil
}
