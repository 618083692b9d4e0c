package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
)

const NotificationTypeReminder = "reminder"

type NotificationRequest struct {
	EventID     string                         `json:"eventId" example:"3f1c2a9e-8f0b-4d55-9a39-5f3f0b7b1c11"`
	Type        string                         `json:"type" example:"reminder"`
	Preferences *NotificationPreferenceRequest `json:"preferences"`
}

func (req *NotificationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, is.UUID),
		validation.Field(&req.Type, validation.Required, validation.In(NotificationTypeReminder)),
	)
}

func (req *NotificationRequest) EventUUID() uuid.UUID {
	return uuid.MustParse(req.EventID)
}

func (req *NotificationRequest) Preference() *domain.NotificationPreference {
	return req.Preferences.preference()
}
