package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunde-outreach/checkin-api/internal/broker"
	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/pkg/ticket"
)

func sundayOutreach() domain.Event {
	date := time.Date(2025, 3, 2, 6, 30, 0, 0, time.UTC)

	return domain.Event{
		ID:                   uuid.New(),
		Name:                 "Sunday Outreach",
		Date:                 date,
		DepartureLocations:   []string{"Central Church", "North Hall"},
		MaxParticipants:      60,
		RegistrationDeadline: date.Add(-48 * time.Hour),
		Status:               domain.EventStatusRegistrationOpen,
	}
}

func janeDoe(eventID uuid.UUID) RegistrationInput {
	return RegistrationInput{
		FullName:                   "Jane Doe",
		ContactNumber:              "+263771234567",
		Email:                      "jane@example.com",
		ChurchAssembly:             "Harare Central",
		PreferredDepartureLocation: "Central Church",
		EventID:                    eventID,
	}
}

type registrationFixture struct {
	store     *memStore
	notifier  *fakeNotifier
	publisher *fakePublisher
	svc       *RegistrationService
}

func newRegistrationFixture(encode CodeEncoder) registrationFixture {
	store := newMemStore()
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	if encode == nil {
		encode = ticket.EncodeQRCode
	}

	return registrationFixture{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		svc: NewRegistrationService(store, store, ticket.NewIDGenerator(ticket.DefaultPrefix),
			encode, notifier, publisher),
	}
}

func TestRegistrationService_Register(t *testing.T) {
	f := newRegistrationFixture(nil)
	event := f.store.addEvent(sundayOutreach())

	res, err := f.svc.Register(context.Background(), janeDoe(event.ID))
	require.NoError(t, err)

	p := res.Participant
	assert.True(t, ticket.IsValidID(p.TicketID), p.TicketID)
	assert.Regexp(t, `^ZUN-`, p.TicketID)
	assert.Equal(t, domain.ParticipantStatusRegistered, p.Status)
	assert.Equal(t, "Jane Doe", p.FullName)
	assert.Equal(t, domain.DefaultNotificationPreference(), p.NotificationPreference)

	decoded, err := ticket.DecodeQRCodeDataURL(p.QRCode)
	require.NoError(t, err)
	assert.Equal(t, p.TicketID, decoded)

	stored := f.store.participant(p.ID)
	assert.Equal(t, p.TicketID, stored.TicketID)

	require.Len(t, f.notifier.calls, 1)
	assert.Equal(t, "registration", f.notifier.calls[0].kind)
	assert.Equal(t, domain.NotificationPreference{Email: true, SMS: true}, f.notifier.calls[0].prefs)
	require.NotNil(t, res.Notification)
	assert.True(t, res.Notification.Success)

	require.Len(t, f.publisher.messages, 1)
	assert.Equal(t, broker.RoutingKeyRegistered, f.publisher.messages[0].routingKey)
	assert.Equal(t, p.TicketID, f.publisher.messages[0].payload.(broker.ParticipantEvent).TicketID)
}

func TestRegistrationService_Register_ExplicitPreference(t *testing.T) {
	f := newRegistrationFixture(nil)
	event := f.store.addEvent(sundayOutreach())

	input := janeDoe(event.ID)
	input.NotificationPreference = &domain.NotificationPreference{WhatsApp: true}

	res, err := f.svc.Register(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, domain.NotificationPreference{WhatsApp: true}, res.Participant.NotificationPreference)
	require.Len(t, f.notifier.calls, 1)
	assert.Equal(t, domain.NotificationPreference{WhatsApp: true}, f.notifier.calls[0].prefs)
}

func TestRegistrationService_Register_InvalidDepartureLocation(t *testing.T) {
	f := newRegistrationFixture(nil)
	event := f.store.addEvent(sundayOutreach())

	input := janeDoe(event.ID)
	input.PreferredDepartureLocation = "Airport"

	_, err := f.svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidDepartureLocation)
	assert.Empty(t, f.store.participants)
	assert.Empty(t, f.notifier.calls)
	assert.Empty(t, f.publisher.messages)
}

func TestRegistrationService_Register_MissingRequiredFields(t *testing.T) {
	eventID := uuid.New()

	tests := []struct {
		name   string
		mutate func(in *RegistrationInput)
	}{
		{name: "full name", mutate: func(in *RegistrationInput) { in.FullName = "" }},
		{name: "blank full name", mutate: func(in *RegistrationInput) { in.FullName = "   " }},
		{name: "email", mutate: func(in *RegistrationInput) { in.Email = "" }},
		{name: "contact number", mutate: func(in *RegistrationInput) { in.ContactNumber = "" }},
		{name: "event id", mutate: func(in *RegistrationInput) { in.EventID = uuid.Nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets := &fixedTickets{id: "ZUN-ABC123-XYZ789"}
			store := newMemStore()
			svc := NewRegistrationService(store, store, tickets, ticket.EncodeQRCode, &fakeNotifier{}, &fakePublisher{})

			input := janeDoe(eventID)
			tt.mutate(&input)

			_, err := svc.Register(context.Background(), input)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
			assert.Zero(t, tickets.calls)
			assert.Empty(t, store.participants)
		})
	}
}

func TestRegistrationService_Register_UnknownEvent(t *testing.T) {
	f := newRegistrationFixture(nil)

	input := janeDoe(uuid.New())
	input.PreferredDepartureLocation = "Anywhere"

	res, err := f.svc.Register(context.Background(), input)
	require.NoError(t, err)

	assert.Nil(t, res.Notification)
	assert.Empty(t, f.notifier.calls)
	assert.Len(t, f.store.participants, 1)
	assert.Len(t, f.publisher.messages, 1)
}

func TestRegistrationService_Register_CodeGenerationFails(t *testing.T) {
	f := newRegistrationFixture(func(string) (string, error) {
		return "", errors.New("encoder broke")
	})
	event := f.store.addEvent(sundayOutreach())

	_, err := f.svc.Register(context.Background(), janeDoe(event.ID))
	assert.ErrorIs(t, err, ErrCodeGeneration)
	assert.Empty(t, f.store.participants)
	assert.Empty(t, f.notifier.calls)
}

func TestRegistrationService_Register_DuplicateTicket(t *testing.T) {
	store := newMemStore()
	event := store.addEvent(sundayOutreach())
	store.addParticipant(domain.Participant{TicketID: "ZUN-ABC123-XYZ789", EventID: event.ID})

	svc := NewRegistrationService(store, store, &fixedTickets{id: "ZUN-ABC123-XYZ789"}, ticket.EncodeQRCode, &fakeNotifier{}, nil)

	_, err := svc.Register(context.Background(), janeDoe(event.ID))
	assert.ErrorIs(t, err, ErrTicketIDExists)
}

func TestRegistrationService_Register_PublisherFailureIgnored(t *testing.T) {
	f := newRegistrationFixture(nil)
	f.publisher.err = errors.New("broker down")
	event := f.store.addEvent(sundayOutreach())

	_, err := f.svc.Register(context.Background(), janeDoe(event.ID))
	assert.NoError(t, err)
}
