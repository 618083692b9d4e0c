package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/notification"
)

type ParticipantFinder interface {
	Find(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error)
}

// ReminderOutcome is the delivery result for one recipient of a bulk reminder.
type ReminderOutcome struct {
	ParticipantID uuid.UUID       `json:"participantId"`
	Name          string          `json:"name"`
	Success       bool            `json:"success"`
	Results       map[string]bool `json:"results"`
}

type ReminderReport struct {
	Sent     int               `json:"sent"`
	Total    int               `json:"total"`
	Outcomes []ReminderOutcome `json:"results"`
}

type NotificationService struct {
	events       EventFinder
	participants ParticipantFinder
	notifier     Notifier
	delay        time.Duration
}

func NewNotificationService(events EventFinder, participants ParticipantFinder, notifier Notifier, delay time.Duration) *NotificationService {
	return &NotificationService{
		events:       events,
		participants: participants,
		notifier:     notifier,
		delay:        delay,
	}
}

// SendReminders reminds every still-registered participant of the event, one
// at a time with a pause between recipients. prefs defaults to email and SMS.
// Cancelling ctx stops the run and returns what was sent so far.
func (s *NotificationService) SendReminders(ctx context.Context, eventID uuid.UUID, prefs *domain.NotificationPreference) (ReminderReport, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return ReminderReport{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	participants, err := s.participants.Find(ctx, domain.ParticipantFilter{
		EventID: &eventID,
		Status:  domain.ParticipantStatusRegistered,
	})
	if err != nil {
		return ReminderReport{}, fmt.Errorf("s.participants.Find -> %w", err)
	}

	channels := domain.DefaultNotificationPreference()
	if prefs != nil {
		channels = *prefs
	}

	report := ReminderReport{
		Total:    len(participants),
		Outcomes: make([]ReminderOutcome, 0, len(participants)),
	}

	for i, p := range participants {
		if i > 0 {
			if err := sleep(ctx, s.delay); err != nil {
				return report, err
			}
		}

		res := s.notifier.SendEventReminder(ctx, p, event, channels)
		if res.Success {
			report.Sent++
		}
		report.Outcomes = append(report.Outcomes, ReminderOutcome{
			ParticipantID: p.ID,
			Name:          p.FullName,
			Success:       res.Success,
			Results:       res.Results,
		})
	}

	zap.L().Info("event reminders dispatched",
		zap.String("event_id", eventID.String()),
		zap.Int("sent", report.Sent),
		zap.Int("total", report.Total),
	)

	return report, nil
}

var _ Notifier = (*notification.Dispatcher)(nil)

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
