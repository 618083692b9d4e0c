package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunde-outreach/checkin-api/internal/domain"
)

type fakeCounter struct {
	byStatus   map[domain.ParticipantStatus]int
	byLocation []domain.LocationStats
}

func (f fakeCounter) CountByStatus(context.Context, uuid.UUID) (map[domain.ParticipantStatus]int, error) {
	return f.byStatus, nil
}

func (f fakeCounter) CountByLocation(context.Context, uuid.UUID) ([]domain.LocationStats, error) {
	return f.byLocation, nil
}

type fakeHistory struct {
	entries []domain.AttendanceEntry
	filter  domain.AttendanceFilter
}

func (f *fakeHistory) Find(_ context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceEntry, error) {
	f.filter = filter
	return f.entries, nil
}

func TestAttendanceService_GetEventStats(t *testing.T) {
	store := newMemStore()
	event := store.addEvent(sundayOutreach())

	counter := fakeCounter{
		byStatus: map[domain.ParticipantStatus]int{
			domain.ParticipantStatusRegistered: 4,
			domain.ParticipantStatusCheckedIn:  3,
			domain.ParticipantStatusCheckedOut: 1,
			domain.ParticipantStatusNoShow:     1,
		},
		byLocation: []domain.LocationStats{
			{Location: "Central Church", Registered: 6, CheckedIn: 4},
			{Location: "North Hall", Registered: 3, CheckedIn: 0},
		},
	}
	svc := NewAttendanceService(store, counter, &fakeHistory{})

	stats, err := svc.GetEventStats(context.Background(), event.ID)
	require.NoError(t, err)

	assert.Equal(t, "Sunday Outreach", stats.EventName)
	assert.Equal(t, 9, stats.Registered)
	assert.Equal(t, 4, stats.CheckedIn)
	assert.Equal(t, 44, stats.AttendanceRate)
	assert.Equal(t, 67, stats.ByLocation[0].AttendanceRate)
	assert.Equal(t, 0, stats.ByLocation[1].AttendanceRate)
}

func TestAttendanceService_GetEventStats_Empty(t *testing.T) {
	store := newMemStore()
	event := store.addEvent(sundayOutreach())
	svc := NewAttendanceService(store, fakeCounter{}, &fakeHistory{})

	stats, err := svc.GetEventStats(context.Background(), event.ID)
	require.NoError(t, err)

	assert.Zero(t, stats.Registered)
	assert.Zero(t, stats.AttendanceRate)
	assert.NotNil(t, stats.ByStatus)
	assert.NotNil(t, stats.ByLocation)
}

func TestAttendanceService_GetEventStats_UnknownEvent(t *testing.T) {
	svc := NewAttendanceService(newMemStore(), fakeCounter{}, &fakeHistory{})

	_, err := svc.GetEventStats(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAttendanceService_GetCheckIns(t *testing.T) {
	eventID := uuid.New()
	history := &fakeHistory{entries: []domain.AttendanceEntry{{ParticipantName: "Jane Doe", TicketID: testTicketID}}}
	svc := NewAttendanceService(newMemStore(), fakeCounter{}, history)

	entries, err := svc.GetCheckIns(context.Background(), domain.AttendanceFilter{EventID: &eventID, Search: "jane"})
	require.NoError(t, err)

	assert.Len(t, entries, 1)
	assert.Equal(t, "jane", history.filter.Search)
	assert.Equal(t, eventID, *history.filter.EventID)
}
