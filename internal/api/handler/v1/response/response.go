package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

type HealthResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Zunde check-in API is running"`
	Timestamp time.Time `json:"timestamp"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CreateEventResponse struct {
	Success bool      `json:"success"`
	EventID uuid.UUID `json:"eventId"`
}

type EventsResponse struct {
	Success bool           `json:"success"`
	Events  []domain.Event `json:"events"`
}

type EventResponse struct {
	Success bool         `json:"success"`
	Event   domain.Event `json:"event"`
}

type EventStatsResponse struct {
	Success bool              `json:"success"`
	Stats   domain.EventStats `json:"stats"`
}

type RegistrationResponse struct {
	Success       bool      `json:"success"`
	ParticipantID uuid.UUID `json:"participantId"`
	TicketID      string    `json:"ticketId" example:"ZUN-LZ3K9Q2A-X7F2QD"`
	QRCode        string    `json:"qrCode" example:"data:image/png;base64,iVBORw0KGgo..."`
}

type ParticipantsResponse struct {
	Success      bool                 `json:"success"`
	Participants []domain.Participant `json:"participants"`
}

type ParticipantResponse struct {
	Success     bool               `json:"success"`
	Participant domain.Participant `json:"participant"`
}

type CheckInParticipant struct {
	Name      string `json:"name" example:"Jane Doe"`
	TicketID  string `json:"ticketId" example:"ZUN-ABC123-XYZ789"`
	BusNumber string `json:"busNumber,omitempty" example:"Bus A"`
}

type CheckInResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message" example:"Check-in successful"`
	Participant CheckInParticipant `json:"participant"`
}

type ScanResponse struct {
	Success  bool   `json:"success"`
	TicketID string `json:"ticketId"`
}

type CheckInsResponse struct {
	Success bool                     `json:"success"`
	Records []domain.AttendanceEntry `json:"records"`
}

type NotificationResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message" example:"Sent 12 of 14 notifications"`
	Sent    int                       `json:"sent"`
	Total   int                       `json:"total"`
	Results []service.ReminderOutcome `json:"results"`
}
