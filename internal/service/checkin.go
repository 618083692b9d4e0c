package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zunde-outreach/checkin-api/internal/broker"
	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/repository"
)

var (
	ErrInvalidTicket    = errors.New("invalid ticket id")
	ErrAlreadyCheckedIn = errors.New("participant already checked in")
	ErrNoCheckInRecord  = errors.New("no check-in record found")
)

type TicketLookup interface {
	FindByTicketID(ctx context.Context, ticketID string) (domain.Participant, error)
}

type AttendanceStore interface {
	CheckIn(ctx context.Context, participantID uuid.UUID, fromStatus domain.ParticipantStatus, record domain.AttendanceRecord) (domain.AttendanceRecord, error)
	CheckOut(ctx context.Context, participantID, recordID uuid.UUID, at time.Time) (domain.AttendanceRecord, error)
	FindOpenByParticipantID(ctx context.Context, participantID uuid.UUID) (domain.AttendanceRecord, error)
}

type CheckInInput struct {
	TicketID    string
	BusNumber   string
	StaffMember string
	Location    string
}

type CheckInResult struct {
	Participant domain.Participant
	Record      domain.AttendanceRecord
}

type CheckInService struct {
	participants TicketLookup
	events       EventFinder
	attendance   AttendanceStore
	notifier     Notifier
	publisher    EventPublisher
	now          func() time.Time
}

func NewCheckInService(
	participants TicketLookup,
	events EventFinder,
	attendance AttendanceStore,
	notifier Notifier,
	publisher EventPublisher,
) *CheckInService {
	return &CheckInService{
		participants: participants,
		events:       events,
		attendance:   attendance,
		notifier:     notifier,
		publisher:    publisher,
		now:          time.Now,
	}
}

// CheckIn opens an attendance record for the ticket holder. Only a participant
// who is currently checked in is refused; checked-out and no-show participants
// may check in again.
func (s *CheckInService) CheckIn(ctx context.Context, input CheckInInput) (CheckInResult, error) {
	participant, err := s.findParticipant(ctx, input.TicketID)
	if err != nil {
		return CheckInResult{}, err
	}

	if participant.Status == domain.ParticipantStatusCheckedIn {
		return CheckInResult{}, ErrAlreadyCheckedIn
	}

	record, err := s.attendance.CheckIn(ctx, participant.ID, participant.Status, domain.AttendanceRecord{
		ID:            uuid.New(),
		ParticipantID: participant.ID,
		EventID:       participant.EventID,
		CheckInTime:   s.now().UTC(),
		BusNumber:     input.BusNumber,
		StaffMember:   input.StaffMember,
		Location:      input.Location,
	})
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) || errors.Is(err, repository.ErrOpenAttendanceExists) {
			return CheckInResult{}, ErrAlreadyCheckedIn
		}

		return CheckInResult{}, fmt.Errorf("s.attendance.CheckIn -> %w", err)
	}

	participant.Status = domain.ParticipantStatusCheckedIn
	participant.BusNumber = input.BusNumber

	s.confirmCheckIn(ctx, participant, input.BusNumber)

	publish(ctx, s.publisher, broker.RoutingKeyCheckedIn, broker.ParticipantEvent{
		ParticipantID: participant.ID,
		EventID:       participant.EventID,
		TicketID:      participant.TicketID,
		Status:        string(participant.Status),
		BusNumber:     input.BusNumber,
		StaffMember:   input.StaffMember,
		OccurredAt:    record.CheckInTime,
	})

	return CheckInResult{Participant: participant, Record: record}, nil
}

// confirmCheckIn always sends by SMS only, whatever the participant chose at registration.
func (s *CheckInService) confirmCheckIn(ctx context.Context, participant domain.Participant, busNumber string) {
	event, err := s.events.FindByID(ctx, participant.EventID)
	if err != nil {
		if !errors.Is(err, repository.ErrEventNotFound) {
			zap.L().Error("failed to load event for check-in confirmation",
				zap.String("ticket_id", participant.TicketID),
				zap.Error(err),
			)
		}
		return
	}

	res := s.notifier.SendCheckInConfirmation(ctx, participant, event, busNumber, domain.NotificationPreference{SMS: true})
	zap.L().Info("check-in confirmation dispatched",
		zap.String("ticket_id", participant.TicketID),
		zap.Bool("success", res.Success),
	)
}

func (s *CheckInService) CheckOut(ctx context.Context, ticketID string) (CheckInResult, error) {
	participant, err := s.findParticipant(ctx, ticketID)
	if err != nil {
		return CheckInResult{}, err
	}

	open, err := s.attendance.FindOpenByParticipantID(ctx, participant.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAttendanceNotFound) {
			return CheckInResult{}, ErrNoCheckInRecord
		}

		return CheckInResult{}, fmt.Errorf("s.attendance.FindOpenByParticipantID -> %w", err)
	}

	record, err := s.attendance.CheckOut(ctx, participant.ID, open.ID, s.now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrAttendanceNotFound) {
			return CheckInResult{}, ErrNoCheckInRecord
		}

		return CheckInResult{}, fmt.Errorf("s.attendance.CheckOut -> %w", err)
	}

	participant.Status = domain.ParticipantStatusCheckedOut

	occurredAt := s.now().UTC()
	if record.CheckOutTime != nil {
		occurredAt = *record.CheckOutTime
	}
	publish(ctx, s.publisher, broker.RoutingKeyCheckedOut, broker.ParticipantEvent{
		ParticipantID: participant.ID,
		EventID:       participant.EventID,
		TicketID:      participant.TicketID,
		Status:        string(participant.Status),
		BusNumber:     record.BusNumber,
		OccurredAt:    occurredAt,
	})

	return CheckInResult{Participant: participant, Record: record}, nil
}

func (s *CheckInService) findParticipant(ctx context.Context, ticketID string) (domain.Participant, error) {
	participant, err := s.participants.FindByTicketID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.Participant{}, ErrInvalidTicket
		}

		return domain.Participant{}, fmt.Errorf("s.participants.FindByTicketID -> %w", err)
	}

	return participant, nil
}
