package request

import (
	"errors"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

// ErrMissingRegistrationFields is returned before any other registration check.
var ErrMissingRegistrationFields = errors.New("Missing required fields: fullName, email, contactNumber, and eventId are required")

var errInvalidPhone = errors.New("must contain 7 to 15 digits and only digits, spaces, dashes, parentheses or a leading +")

// 7-15 digits overall, with spaces, dashes, parentheses and a leading + allowed.
var phonePattern = func() *regexp2.Regexp {
	re := regexp2.MustCompile(`^(?=(?:\D*\d){7,15}\D*$)\+?[\d\s\-()]+$`, regexp2.None)
	re.MatchTimeout = 100 * time.Millisecond
	return re
}()

func validPhone(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := phonePattern.MatchString(s)
	if err != nil || !ok {
		return errInvalidPhone
	}

	return nil
}

type NotificationPreferenceRequest struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
}

func (p *NotificationPreferenceRequest) preference() *domain.NotificationPreference {
	if p == nil {
		return nil
	}

	return &domain.NotificationPreference{Email: p.Email, SMS: p.SMS, WhatsApp: p.WhatsApp}
}

type RegisterParticipantRequest struct {
	FullName                   string                         `json:"fullName" example:"Jane Doe"`
	ContactNumber              string                         `json:"contactNumber" example:"+263 77 123 4567"`
	Email                      string                         `json:"email" example:"jane@example.com"`
	ChurchAssembly             string                         `json:"churchAssembly" example:"Harare Central"`
	PreferredDepartureLocation string                         `json:"preferredDepartureLocation" example:"Central Church"`
	EmergencyContact           string                         `json:"emergencyContact" example:"John Doe"`
	EmergencyContactNumber     string                         `json:"emergencyContactNumber" example:"+263 77 765 4321"`
	EventID                    string                         `json:"eventId" example:"3f1c2a9e-8f0b-4d55-9a39-5f3f0b7b1c11"`
	NotificationPreference     *NotificationPreferenceRequest `json:"notificationPreference"`
}

func (req *RegisterParticipantRequest) Validate() error {
	if strings.TrimSpace(req.FullName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.ContactNumber) == "" ||
		strings.TrimSpace(req.EventID) == "" {
		return ErrMissingRegistrationFields
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Length(2, 120)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.ContactNumber, validation.By(validPhone)),
		validation.Field(&req.EmergencyContactNumber, validation.By(validPhone)),
		validation.Field(&req.EventID, is.UUID),
	)
}

// Input converts a validated request.
func (req *RegisterParticipantRequest) Input() service.RegistrationInput {
	return service.RegistrationInput{
		FullName:                   strings.TrimSpace(req.FullName),
		ContactNumber:              strings.TrimSpace(req.ContactNumber),
		Email:                      strings.TrimSpace(req.Email),
		ChurchAssembly:             strings.TrimSpace(req.ChurchAssembly),
		PreferredDepartureLocation: strings.TrimSpace(req.PreferredDepartureLocation),
		EmergencyContact:           strings.TrimSpace(req.EmergencyContact),
		EmergencyContactNumber:     strings.TrimSpace(req.EmergencyContactNumber),
		EventID:                    uuid.MustParse(req.EventID),
		NotificationPreference:     req.NotificationPreference.preference(),
	}
}
