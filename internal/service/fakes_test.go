package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/notification"
	"github.com/zunde-outreach/checkin-api/internal/repository"
)

// memStore is an in-memory stand-in for the postgres repositories with the
// same conditional update semantics.
type memStore struct {
	mu           sync.Mutex
	events       map[uuid.UUID]domain.Event
	participants map[uuid.UUID]domain.Participant
	records      []domain.AttendanceRecord
}

func newMemStore() *memStore {
	return &memStore{
		events:       map[uuid.UUID]domain.Event{},
		participants: map[uuid.UUID]domain.Participant{},
	}
}

func (m *memStore) addEvent(e domain.Event) domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	m.events[e.ID] = e
	return e
}

func (m *memStore) addParticipant(p domain.Participant) domain.Participant {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.participants[p.ID] = p
	return p
}

func (m *memStore) participant(id uuid.UUID) domain.Participant {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.participants[id]
}

func (m *memStore) openRecords(participantID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.records {
		if r.ParticipantID == participantID && r.IsOpen() {
			n++
		}
	}
	return n
}

// ParticipantCreator, EventFinder, TicketLookup, ParticipantFinder

func (m *memStore) Create(_ context.Context, p domain.Participant) (domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.participants {
		if existing.TicketID == p.TicketID {
			return domain.Participant{}, repository.ErrTicketIDExists
		}
	}
	m.participants[p.ID] = p
	return p, nil
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (m *memStore) FindByTicketID(_ context.Context, ticketID string) (domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.participants {
		if p.TicketID == ticketID {
			return p, nil
		}
	}
	return domain.Participant{}, repository.ErrParticipantNotFound
}

func (m *memStore) Find(_ context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Participant
	for _, p := range m.participants {
		if filter.EventID != nil && p.EventID != *filter.EventID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.FullName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// AttendanceStore

func (m *memStore) CheckIn(_ context.Context, participantID uuid.UUID, fromStatus domain.ParticipantStatus, record domain.AttendanceRecord) (domain.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.participants[participantID]
	if !ok || p.Status != fromStatus {
		return domain.AttendanceRecord{}, repository.ErrStatusConflict
	}
	for _, r := range m.records {
		if r.ParticipantID == participantID && r.IsOpen() {
			return domain.AttendanceRecord{}, repository.ErrOpenAttendanceExists
		}
	}

	p.Status = domain.ParticipantStatusCheckedIn
	p.BusNumber = record.BusNumber
	m.participants[participantID] = p
	m.records = append(m.records, record)
	return record, nil
}

func (m *memStore) CheckOut(_ context.Context, participantID, recordID uuid.UUID, at time.Time) (domain.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.records {
		if r.ID == recordID && r.ParticipantID == participantID && r.IsOpen() {
			m.records[i].CheckOutTime = &at
			p := m.participants[participantID]
			p.Status = domain.ParticipantStatusCheckedOut
			m.participants[participantID] = p
			return m.records[i], nil
		}
	}
	return domain.AttendanceRecord{}, repository.ErrAttendanceNotFound
}

func (m *memStore) FindOpenByParticipantID(_ context.Context, participantID uuid.UUID) (domain.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.ParticipantID == participantID && r.IsOpen() {
			return r, nil
		}
	}
	return domain.AttendanceRecord{}, repository.ErrAttendanceNotFound
}

type notifyCall struct {
	kind      string
	ticketID  string
	busNumber string
	prefs     domain.NotificationPreference
}

type fakeNotifier struct {
	mu     sync.Mutex
	calls  []notifyCall
	result func(p domain.Participant) notification.Result
}

func (f *fakeNotifier) record(kind string, p domain.Participant, bus string, prefs domain.NotificationPreference) notification.Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, notifyCall{kind: kind, ticketID: p.TicketID, busNumber: bus, prefs: prefs})
	if f.result != nil {
		return f.result(p)
	}
	return notification.Result{Success: true, Results: map[string]bool{notification.ChannelSMS: true}}
}

func (f *fakeNotifier) SendRegistrationConfirmation(_ context.Context, p domain.Participant, _ domain.Event, _ string, prefs domain.NotificationPreference) notification.Result {
	return f.record("registration", p, "", prefs)
}

func (f *fakeNotifier) SendEventReminder(_ context.Context, p domain.Participant, _ domain.Event, prefs domain.NotificationPreference) notification.Result {
	return f.record("reminder", p, "", prefs)
}

func (f *fakeNotifier) SendCheckInConfirmation(_ context.Context, p domain.Participant, _ domain.Event, busNumber string, prefs domain.NotificationPreference) notification.Result {
	return f.record("checkin", p, busNumber, prefs)
}

type published struct {
	routingKey string
	payload    any
}

type fakePublisher struct {
	mu       sync.Mutex
	err      error
	messages []published
}

func (f *fakePublisher) Publish(_ context.Context, routingKey string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, published{routingKey: routingKey, payload: payload})
	return f.err
}

type fixedTickets struct {
	id    string
	calls int
}

func (f *fixedTickets) Generate() string {
	f.calls++
	return f.id
}
