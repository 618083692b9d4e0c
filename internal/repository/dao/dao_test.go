package dao

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, d *EventDAO) Event {
	t.Helper()

	date := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	event, err := d.Insert(context.Background(), Event{
		Name:                 "Sunday Outreach",
		Date:                 date,
		DepartureLocations:   pq.StringArray{"Central Church", "North Hall"},
		MaxParticipants:      100,
		RegistrationDeadline: date.Add(-24 * time.Hour),
		Status:               "registration-open",
	})
	require.NoError(t, err)

	return event
}

func seedParticipant(t *testing.T, d *ParticipantDAO, eventID uuid.UUID, ticketID string) Participant {
	t.Helper()

	p, err := d.Insert(context.Background(), Participant{
		FullName:                   "Jane Doe",
		ContactNumber:              "+263771234567",
		Email:                      "jane@example.com",
		PreferredDepartureLocation: "Central Church",
		EventID:                    eventID,
		TicketID:                   ticketID,
		QRCode:                     "data:image/png;base64,AAAA",
		RegistrationDate:           time.Now().UTC(),
		Status:                     "registered",
		NotifyEmail:                true,
		NotifySMS:                  true,
	})
	require.NoError(t, err)

	return p
}

func TestEventDAO(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()
	d := NewEventDAO(conn)

	event := seedEvent(t, d)

	found, err := d.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Central Church", "North Hall"}, []string(found.DepartureLocations))

	updated, err := d.UpdateStatus(ctx, event.ID, "registration-open", "registration-closed")
	require.NoError(t, err)
	assert.Equal(t, "registration-closed", updated.Status)

	_, err = d.UpdateStatus(ctx, event.ID, "registration-open", "completed")
	assert.ErrorIs(t, err, ErrStatusConflict)

	_, err = d.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestParticipantDAO_DuplicateTicket(t *testing.T) {
	conn := setupDB(t)
	d := NewParticipantDAO(conn)

	seedParticipant(t, d, uuid.New(), "ZUN-ABC123-XYZ789")

	_, err := d.Insert(context.Background(), Participant{
		FullName: "John Doe", Email: "john@example.com", ContactNumber: "1",
		EventID: uuid.New(), TicketID: "ZUN-ABC123-XYZ789", QRCode: "x",
		RegistrationDate: time.Now(), Status: "registered",
	})
	assert.ErrorIs(t, err, ErrTicketIDExists)
}

func TestParticipantDAO_FindAndCount(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()
	events := NewEventDAO(conn)
	d := NewParticipantDAO(conn)

	event := seedEvent(t, events)
	seedParticipant(t, d, event.ID, "ZUN-AAA-AAAAAA")
	seedParticipant(t, d, event.ID, "ZUN-BBB-BBBBBB")

	found, err := d.Find(ctx, ParticipantQuery{EventID: &event.ID, Search: "bbb"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ZUN-BBB-BBBBBB", found[0].TicketID)

	counts, err := d.CountByStatus(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []StatusCount{{Status: "registered", Count: 2}}, counts)

	locations, err := d.CountByLocation(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []LocationCount{{Location: "Central Church", Registered: 2}}, locations)
}

func TestAttendanceDAO_CheckInCheckOut(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()
	participants := NewParticipantDAO(conn)
	d := NewAttendanceDAO(conn)

	p := seedParticipant(t, participants, uuid.New(), "ZUN-ABC123-XYZ789")

	record, err := d.CheckIn(ctx, p.ID, "registered", AttendanceRecord{
		EventID: p.EventID, CheckInTime: time.Now().UTC(), BusNumber: "Bus A",
	})
	require.NoError(t, err)

	// Second check-in from the stale status must not create another record.
	_, err = d.CheckIn(ctx, p.ID, "registered", AttendanceRecord{EventID: p.EventID, CheckInTime: time.Now().UTC()})
	assert.ErrorIs(t, err, ErrStatusConflict)

	rows, err := d.Find(ctx, AttendanceQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Doe", rows[0].ParticipantName)
	assert.Equal(t, "Bus A", rows[0].BusNumber)

	open, err := d.FindOpenByParticipantID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, open.ID)

	closed, err := d.CheckOut(ctx, p.ID, record.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.NotNil(t, closed.CheckOutTime)

	_, err = d.CheckOut(ctx, p.ID, record.ID, time.Now().UTC())
	assert.ErrorIs(t, err, ErrAttendanceNotFound)

	found, err := participants.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "checked-out", found.Status)
}

func TestAttendanceDAO_ConcurrentCheckIn(t *testing.T) {
	conn := setupDB(t)
	ctx := context.Background()
	participants := NewParticipantDAO(conn)
	d := NewAttendanceDAO(conn)

	p := seedParticipant(t, participants, uuid.New(), "ZUN-RACE-RACE01")

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.CheckIn(ctx, p.ID, "registered", AttendanceRecord{EventID: p.EventID, CheckInTime: time.Now().UTC()})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)

	var open int64
	require.NoError(t, conn.Model(&AttendanceRecord{}).Where("participant_id = ? AND check_out_time IS NULL", p.ID).Count(&open).Error)
	assert.EqualValues(t, 1, open)
}
