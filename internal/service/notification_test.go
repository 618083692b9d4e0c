package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/notification"
)

func seedReminderParticipants(store *memStore, eventID uuid.UUID) {
	store.addParticipant(domain.Participant{FullName: "Jane Doe", TicketID: "ZUN-A-AAAAAA", EventID: eventID, Status: domain.ParticipantStatusRegistered})
	store.addParticipant(domain.Participant{FullName: "John Moyo", TicketID: "ZUN-B-BBBBBB", EventID: eventID, Status: domain.ParticipantStatusRegistered})
	store.addParticipant(domain.Participant{FullName: "Rudo Chari", TicketID: "ZUN-C-CCCCCC", EventID: eventID, Status: domain.ParticipantStatusCheckedIn})
	store.addParticipant(domain.Participant{FullName: "Other Event", TicketID: "ZUN-D-DDDDDD", EventID: uuid.New(), Status: domain.ParticipantStatusRegistered})
}

func TestNotificationService_SendReminders(t *testing.T) {
	store := newMemStore()
	event := store.addEvent(sundayOutreach())
	seedReminderParticipants(store, event.ID)

	notifier := &fakeNotifier{result: func(p domain.Participant) notification.Result {
		ok := p.TicketID != "ZUN-B-BBBBBB"
		return notification.Result{Success: ok, Results: map[string]bool{notification.ChannelEmail: ok, notification.ChannelSMS: ok}}
	}}
	svc := NewNotificationService(store, store, notifier, time.Millisecond)

	report, err := svc.SendReminders(context.Background(), event.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Sent)
	require.Len(t, report.Outcomes, 2)

	require.Len(t, notifier.calls, 2)
	for _, call := range notifier.calls {
		assert.Equal(t, "reminder", call.kind)
		assert.Equal(t, domain.DefaultNotificationPreference(), call.prefs)
		assert.NotEqual(t, "ZUN-C-CCCCCC", call.ticketID)
	}
}

func TestNotificationService_SendReminders_ExplicitPreference(t *testing.T) {
	store := newMemStore()
	event := store.addEvent(sundayOutreach())
	seedReminderParticipants(store, event.ID)

	notifier := &fakeNotifier{}
	svc := NewNotificationService(store, store, notifier, 0)

	_, err := svc.SendReminders(context.Background(), event.ID, &domain.NotificationPreference{WhatsApp: true})
	require.NoError(t, err)

	for _, call := range notifier.calls {
		assert.Equal(t, domain.NotificationPreference{WhatsApp: true}, call.prefs)
	}
}

func TestNotificationService_SendReminders_NoParticipants(t *testing.T) {
	store := newMemStore()
	event := store.addEvent(sundayOutreach())
	notifier := &fakeNotifier{}
	svc := NewNotificationService(store, store, notifier, time.Millisecond)

	report, err := svc.SendReminders(context.Background(), event.ID, nil)
	require.NoError(t, err)

	assert.Zero(t, report.Total)
	assert.Zero(t, report.Sent)
	assert.Empty(t, notifier.calls)
}

func TestNotificationService_SendReminders_UnknownEvent(t *testing.T) {
	svc := NewNotificationService(newMemStore(), newMemStore(), &fakeNotifier{}, 0)

	_, err := svc.SendReminders(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestNotificationService_SendReminders_Cancelled(t *testing.T) {
	store := newMemStore()
	event := store.addEvent(sundayOutreach())
	seedReminderParticipants(store, event.ID)

	ctx, cancel := context.WithCancel(context.Background())
	notifier := &fakeNotifier{result: func(domain.Participant) notification.Result {
		cancel()
		return notification.Result{Success: true, Results: map[string]bool{notification.ChannelSMS: true}}
	}}
	svc := NewNotificationService(store, store, notifier, time.Hour)

	report, err := svc.SendReminders(ctx, event.ID, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Sent)
	assert.Len(t, notifier.calls, 1)
}
