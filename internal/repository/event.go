package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/repository/dao"
)

var (
	ErrEventNotFound  = dao.ErrEventNotFound
	ErrStatusConflict = dao.ErrStatusConflict
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.EventStatus) (domain.Event, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(from), string(to))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) domainToDao(event domain.Event) dao.Event {
	return dao.Event{
		ID:                   event.ID,
		Name:                 event.Name,
		Description:          event.Description,
		Date:                 event.Date,
		DepartureLocations:   pq.StringArray(event.DepartureLocations),
		MaxParticipants:      event.MaxParticipants,
		RegistrationDeadline: event.RegistrationDeadline,
		Status:               string(event.Status),
		CreatedAt:            event.CreatedAt,
		UpdatedAt:            event.UpdatedAt,
	}
}

func (r *EventRepository) daoToDomain(event dao.Event) domain.Event {
	return domain.Event{
		ID:                   event.ID,
		Name:                 event.Name,
		Description:          event.Description,
		Date:                 event.Date,
		DepartureLocations:   []string(event.DepartureLocations),
		MaxParticipants:      event.MaxParticipants,
		RegistrationDeadline: event.RegistrationDeadline,
		Status:               domain.EventStatus(event.Status),
		CreatedAt:            event.CreatedAt,
		UpdatedAt:            event.UpdatedAt,
	}
}
