package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
)

type ParticipantCounter interface {
	CountByStatus(ctx context.Context, eventID uuid.UUID) (map[domain.ParticipantStatus]int, error)
	CountByLocation(ctx context.Context, eventID uuid.UUID) ([]domain.LocationStats, error)
}

type AttendanceHistory interface {
	Find(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceEntry, error)
}

type AttendanceService struct {
	events       EventFinder
	participants ParticipantCounter
	history      AttendanceHistory
}

func NewAttendanceService(events EventFinder, participants ParticipantCounter, history AttendanceHistory) *AttendanceService {
	return &AttendanceService{
		events:       events,
		participants: participants,
		history:      history,
	}
}

func (s *AttendanceService) GetCheckIns(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceEntry, error) {
	entries, err := s.history.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.history.Find -> %w", err)
	}

	return entries, nil
}

// GetEventStats counts a participant as attended once checked in, including
// after check-out.
func (s *AttendanceService) GetEventStats(ctx context.Context, eventID uuid.UUID) (domain.EventStats, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	byStatus, err := s.participants.CountByStatus(ctx, eventID)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("s.participants.CountByStatus -> %w", err)
	}

	byLocation, err := s.participants.CountByLocation(ctx, eventID)
	if err != nil {
		return domain.EventStats{}, fmt.Errorf("s.participants.CountByLocation -> %w", err)
	}

	if byStatus == nil {
		byStatus = map[domain.ParticipantStatus]int{}
	}
	if byLocation == nil {
		byLocation = []domain.LocationStats{}
	}

	stats := domain.EventStats{
		EventID:    event.ID,
		EventName:  event.Name,
		ByStatus:   byStatus,
		ByLocation: byLocation,
	}
	for _, n := range byStatus {
		stats.Registered += n
	}
	stats.CheckedIn = byStatus[domain.ParticipantStatusCheckedIn] + byStatus[domain.ParticipantStatusCheckedOut]
	stats.AttendanceRate = attendanceRate(stats.CheckedIn, stats.Registered)

	for i := range stats.ByLocation {
		stats.ByLocation[i].AttendanceRate = attendanceRate(stats.ByLocation[i].CheckedIn, stats.ByLocation[i].Registered)
	}

	return stats, nil
}

func attendanceRate(checkedIn, registered int) int {
	if registered == 0 {
		return 0
	}

	return int(math.Round(float64(checkedIn) * 100 / float64(registered)))
}
