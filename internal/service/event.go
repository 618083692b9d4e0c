package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/repository"
)

var (
	ErrEventNotFound           = repository.ErrEventNotFound
	ErrInvalidStatusTransition = errors.New("invalid event status transition")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.EventStatus) (domain.Event, error)
}

type EventService struct {
	repo EventRepository
	now  func() time.Time
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	now := s.now().UTC()

	event.ID = uuid.New()
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}
	event.CreatedAt = now
	event.UpdatedAt = now

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// UpdateEventStatus moves an event forward in its lifecycle.
func (s *EventService) UpdateEventStatus(ctx context.Context, id uuid.UUID, status domain.EventStatus) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.Status.CanTransitionTo(status) {
		return domain.Event{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, event.Status, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, event.Status, status)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return domain.Event{}, fmt.Errorf("%w: status changed concurrently", ErrInvalidStatusTransition)
		}

		return domain.Event{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return updated, nil
}
