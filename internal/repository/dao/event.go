package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Event struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name                 string         `gorm:"not null"`
	Description          string         `gorm:"not null"`
	Date                 time.Time      `gorm:"not null"`
	DepartureLocations   pq.StringArray `gorm:"type:text[];not null"`
	MaxParticipants      int            `gorm:"not null"`
	RegistrationDeadline time.Time      `gorm:"not null"`
	Status               string         `gorm:"not null"`
	CreatedAt            time.Time      `gorm:"not null"`
	UpdatedAt            time.Time      `gorm:"not null"`
}

func (Event) TableName() string {
	return "events"
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uuid.UUID) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("date ASC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// UpdateStatus moves the event from one status to another. The update is
// conditional on the current status still being from.
func (d *EventDAO) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return Event{}, err
		}

		return Event{}, ErrStatusConflict
	}

	return d.FindByID(ctx, id)
}
