package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusUpcoming           EventStatus = "upcoming"
	EventStatusRegistrationOpen   EventStatus = "registration-open"
	EventStatusRegistrationClosed EventStatus = "registration-closed"
	EventStatusCompleted          EventStatus = "completed"
)

// eventStatusOrder is the forward-only lifecycle of an event.
var eventStatusOrder = map[EventStatus]int{
	EventStatusUpcoming:           0,
	EventStatusRegistrationOpen:   1,
	EventStatusRegistrationClosed: 2,
	EventStatusCompleted:          3,
}

func (s EventStatus) IsValid() bool {
	_, ok := eventStatusOrder[s]
	return ok
}

// CanTransitionTo reports whether next comes strictly after s in the lifecycle.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	from, ok := eventStatusOrder[s]
	if !ok {
		return false
	}
	to, ok := eventStatusOrder[next]
	if !ok {
		return false
	}

	return to > from
}

type Event struct {
	ID                   uuid.UUID   `json:"id"`
	Name                 string      `json:"name"`
	Description          string      `json:"description"`
	Date                 time.Time   `json:"date"`
	DepartureLocations   []string    `json:"departureLocations"`
	MaxParticipants      int         `json:"maxParticipants"`
	RegistrationDeadline time.Time   `json:"registrationDeadline"`
	Status               EventStatus `json:"status"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

func (e Event) HasDepartureLocation(location string) bool {
	for _, l := range e.DepartureLocations {
		if l == location {
			return true
		}
	}

	return false
}
