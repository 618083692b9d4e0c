package domain

import (
	"time"

	"github.com/google/uuid"
)

type ParticipantStatus string

const (
	ParticipantStatusRegistered ParticipantStatus = "registered"
	ParticipantStatusCheckedIn  ParticipantStatus = "checked-in"
	ParticipantStatusCheckedOut ParticipantStatus = "checked-out"
	// ParticipantStatusNoShow is never set by this service.
	ParticipantStatusNoShow ParticipantStatus = "no-show"
)

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantStatusRegistered, ParticipantStatusCheckedIn, ParticipantStatusCheckedOut, ParticipantStatusNoShow:
		return true
	}

	return false
}

type Participant struct {
	ID                         uuid.UUID              `json:"id"`
	FullName                   string                 `json:"fullName"`
	ContactNumber              string                 `json:"contactNumber"`
	Email                      string                 `json:"email"`
	ChurchAssembly             string                 `json:"churchAssembly"`
	PreferredDepartureLocation string                 `json:"preferredDepartureLocation"`
	EmergencyContact           string                 `json:"emergencyContact"`
	EmergencyContactNumber     string                 `json:"emergencyContactNumber"`
	EventID                    uuid.UUID              `json:"eventId"`
	TicketID                   string                 `json:"ticketId"`
	QRCode                     string                 `json:"qrCode,omitempty"`
	RegistrationDate           time.Time              `json:"registrationDate"`
	Status                     ParticipantStatus      `json:"status"`
	BusNumber                  string                 `json:"busNumber,omitempty"`
	NotificationPreference     NotificationPreference `json:"notificationPreference"`
}

// ParticipantFilter narrows participant listings. Zero values mean "any".
type ParticipantFilter struct {
	EventID *uuid.UUID
	Status  ParticipantStatus
	Email   string
	Search  string
}
