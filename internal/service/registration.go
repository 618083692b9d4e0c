package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zunde-outreach/checkin-api/internal/broker"
	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/notification"
	"github.com/zunde-outreach/checkin-api/internal/repository"
)

var (
	ErrMissingRequiredFields    = errors.New("missing required fields")
	ErrInvalidDepartureLocation = errors.New("departure location is not offered by the event")
	ErrCodeGeneration           = errors.New("failed to generate ticket code")
	ErrTicketIDExists           = repository.ErrTicketIDExists
)

type ParticipantCreator interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
}

type EventFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
}

type TicketGenerator interface {
	Generate() string
}

// CodeEncoder turns a ticket id into a scannable image data URL.
type CodeEncoder func(content string) (string, error)

type Notifier interface {
	SendRegistrationConfirmation(ctx context.Context, p domain.Participant, e domain.Event, qrCode string, prefs domain.NotificationPreference) notification.Result
	SendEventReminder(ctx context.Context, p domain.Participant, e domain.Event, prefs domain.NotificationPreference) notification.Result
	SendCheckInConfirmation(ctx context.Context, p domain.Participant, e domain.Event, busNumber string, prefs domain.NotificationPreference) notification.Result
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type RegistrationInput struct {
	FullName                   string
	ContactNumber              string
	Email                      string
	ChurchAssembly             string
	PreferredDepartureLocation string
	EmergencyContact           string
	EmergencyContactNumber     string
	EventID                    uuid.UUID
	// NotificationPreference defaults to email and SMS when nil.
	NotificationPreference *domain.NotificationPreference
}

type RegistrationResult struct {
	Participant  domain.Participant
	Notification *notification.Result
}

type RegistrationService struct {
	participants ParticipantCreator
	events       EventFinder
	tickets      TicketGenerator
	encode       CodeEncoder
	notifier     Notifier
	publisher    EventPublisher
	now          func() time.Time
}

func NewRegistrationService(
	participants ParticipantCreator,
	events EventFinder,
	tickets TicketGenerator,
	encode CodeEncoder,
	notifier Notifier,
	publisher EventPublisher,
) *RegistrationService {
	return &RegistrationService{
		participants: participants,
		events:       events,
		tickets:      tickets,
		encode:       encode,
		notifier:     notifier,
		publisher:    publisher,
		now:          time.Now,
	}
}

// Register persists a participant with a fresh ticket and sends the
// confirmation. A registration for an unknown event is still stored, but
// no confirmation is sent for it.
func (s *RegistrationService) Register(ctx context.Context, input RegistrationInput) (RegistrationResult, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.ContactNumber) == "" || input.EventID == uuid.Nil {
		return RegistrationResult{}, ErrMissingRequiredFields
	}

	event, eventFound, err := s.findEvent(ctx, input.EventID)
	if err != nil {
		return RegistrationResult{}, err
	}
	if eventFound && !event.HasDepartureLocation(input.PreferredDepartureLocation) {
		return RegistrationResult{}, fmt.Errorf("%w: %q", ErrInvalidDepartureLocation, input.PreferredDepartureLocation)
	}

	ticketID := s.tickets.Generate()
	qrCode, err := s.encode(ticketID)
	if err != nil {
		return RegistrationResult{}, fmt.Errorf("%w: %w", ErrCodeGeneration, err)
	}

	prefs := domain.DefaultNotificationPreference()
	if input.NotificationPreference != nil {
		prefs = *input.NotificationPreference
	}

	participant, err := s.participants.Create(ctx, domain.Participant{
		ID:                         uuid.New(),
		FullName:                   strings.TrimSpace(input.FullName),
		ContactNumber:              strings.TrimSpace(input.ContactNumber),
		Email:                      strings.TrimSpace(input.Email),
		ChurchAssembly:             input.ChurchAssembly,
		PreferredDepartureLocation: input.PreferredDepartureLocation,
		EmergencyContact:           input.EmergencyContact,
		EmergencyContactNumber:     input.EmergencyContactNumber,
		EventID:                    input.EventID,
		TicketID:                   ticketID,
		QRCode:                     qrCode,
		RegistrationDate:           s.now().UTC(),
		Status:                     domain.ParticipantStatusRegistered,
		NotificationPreference:     prefs,
	})
	if err != nil {
		return RegistrationResult{}, fmt.Errorf("s.participants.Create -> %w", err)
	}

	result := RegistrationResult{Participant: participant}

	if eventFound {
		res := s.notifier.SendRegistrationConfirmation(ctx, participant, event, qrCode, prefs)
		result.Notification = &res
		zap.L().Info("registration confirmation dispatched",
			zap.String("ticket_id", ticketID),
			zap.Bool("success", res.Success),
			zap.Any("results", res.Results),
		)
	} else {
		zap.L().Warn("registered participant for unknown event, confirmation skipped",
			zap.String("ticket_id", ticketID),
			zap.String("event_id", input.EventID.String()),
		)
	}

	publish(ctx, s.publisher, broker.RoutingKeyRegistered, broker.ParticipantEvent{
		ParticipantID: participant.ID,
		EventID:       participant.EventID,
		TicketID:      participant.TicketID,
		Status:        string(participant.Status),
		OccurredAt:    participant.RegistrationDate,
	})

	return result, nil
}

func (s *RegistrationService) findEvent(ctx context.Context, id uuid.UUID) (domain.Event, bool, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, false, nil
		}

		return domain.Event{}, false, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	return event, true, nil
}

// publish is best effort: a broker outage must not fail the request.
func publish(ctx context.Context, p EventPublisher, routingKey string, event broker.ParticipantEvent) {
	if p == nil {
		return
	}

	if err := p.Publish(ctx, routingKey, event); err != nil {
		zap.L().Warn("failed to publish participant event",
			zap.String("routing_key", routingKey),
			zap.String("ticket_id", event.TicketID),
			zap.Error(err),
		)
	}
}
