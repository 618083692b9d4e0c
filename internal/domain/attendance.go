package domain

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceRecord struct {
	ID            uuid.UUID  `json:"id"`
	ParticipantID uuid.UUID  `json:"participantId"`
	EventID       uuid.UUID  `json:"eventId"`
	CheckInTime   time.Time  `json:"checkInTime"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty"`
	BusNumber     string     `json:"busNumber"`
	StaffMember   string     `json:"staffMember"`
	Location      string     `json:"location"`
}

func (r AttendanceRecord) IsOpen() bool {
	return r.CheckOutTime == nil
}

// AttendanceEntry is an attendance record joined with the names staff need to read it.
type AttendanceEntry struct {
	AttendanceRecord
	ParticipantName string `json:"participantName"`
	TicketID        string `json:"ticketId"`
	EventName       string `json:"eventName"`
}

type AttendanceFilter struct {
	EventID *uuid.UUID
	Search  string
}

type LocationStats struct {
	Location       string `json:"location"`
	Registered     int    `json:"registered"`
	CheckedIn      int    `json:"checkedIn"`
	AttendanceRate int    `json:"attendanceRate"`
}

type EventStats struct {
	EventID        uuid.UUID                 `json:"eventId"`
	EventName      string                    `json:"eventName"`
	Registered     int                       `json:"registered"`
	CheckedIn      int                       `json:"checkedIn"`
	AttendanceRate int                       `json:"attendanceRate"`
	ByStatus       map[ParticipantStatus]int `json:"byStatus"`
	ByLocation     []LocationStats           `json:"byLocation"`
}
