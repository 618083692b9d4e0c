package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Participant struct {
	ID                         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName                   string    `gorm:"not null"`
	ContactNumber              string    `gorm:"not null"`
	Email                      string    `gorm:"not null;index"`
	ChurchAssembly             string    `gorm:"not null"`
	PreferredDepartureLocation string    `gorm:"not null"`
	EmergencyContact           string    `gorm:"not null"`
	EmergencyContactNumber     string    `gorm:"not null"`
	EventID                    uuid.UUID `gorm:"type:uuid;not null;index"`
	TicketID                   string    `gorm:"not null;uniqueIndex:uni_participants_ticket_id"`
	QRCode                     string    `gorm:"column:qr_code;not null"`
	RegistrationDate           time.Time `gorm:"not null"`
	Status                     string    `gorm:"not null"`
	BusNumber                  string    `gorm:"not null"`
	NotifyEmail                bool      `gorm:"not null"`
	NotifySMS                  bool      `gorm:"column:notify_sms;not null"`
	NotifyWhatsApp             bool      `gorm:"column:notify_whatsapp;not null"`
}

func (Participant) TableName() string {
	return "participants"
}

type ParticipantQuery struct {
	EventID *uuid.UUID
	Status  string
	Email   string
	Search  string
}

// StatusCount is one row of a per-status aggregate.
type StatusCount struct {
	Status string
	Count  int
}

// LocationCount is one row of a per-departure-location aggregate.
type LocationCount struct {
	Location   string
	Registered int
	CheckedIn  int
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	if participant.ID == uuid.Nil {
		participant.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_participants_ticket_id") {
			return Participant{}, ErrTicketIDExists
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uuid.UUID) (Participant, error) {
	return d.findOne(ctx, "id = ?", id)
}

func (d *ParticipantDAO) FindByTicketID(ctx context.Context, ticketID string) (Participant, error) {
	return d.findOne(ctx, "ticket_id = ?", ticketID)
}

func (d *ParticipantDAO) findOne(ctx context.Context, query string, args ...any) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).Where(query, args...).First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) Find(ctx context.Context, q ParticipantQuery) ([]Participant, error) {
	var participants []Participant

	tx := d.db.WithContext(ctx).Model(&Participant{})
	if q.EventID != nil {
		tx = tx.Where("event_id = ?", *q.EventID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Email != "" {
		tx = tx.Where("LOWER(email) = LOWER(?)", q.Email)
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		tx = tx.Where("full_name ILIKE ? OR email ILIKE ? OR ticket_id ILIKE ?", pattern, pattern, pattern)
	}

	result := tx.Order("registration_date DESC").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) CountByStatus(ctx context.Context, eventID uuid.UUID) ([]StatusCount, error) {
	var rows []StatusCount

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Select("status, COUNT(*) AS count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *ParticipantDAO) CountByLocation(ctx context.Context, eventID uuid.UUID) ([]LocationCount, error) {
	var rows []LocationCount

	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Select(`preferred_departure_location AS location,
			COUNT(*) AS registered,
			COUNT(*) FILTER (WHERE status IN ('checked-in', 'checked-out')) AS checked_in`).
		Where("event_id = ?", eventID).
		Group("preferred_departure_location").
		Order("preferred_departure_location ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}

	return string(out)
}
