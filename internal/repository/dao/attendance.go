package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckInTime   time.Time `gorm:"not null"`
	CheckOutTime  *time.Time
	BusNumber     string `gorm:"not null"`
	StaffMember   string `gorm:"not null"`
	Location      string `gorm:"not null"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// AttendanceRow is an attendance record joined with participant and event names.
type AttendanceRow struct {
	AttendanceRecord
	ParticipantName string
	TicketID        string
	EventName       string
}

type AttendanceQuery struct {
	EventID *uuid.UUID
	Search  string
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

// CheckIn marks the participant checked in and opens an attendance record in
// one transaction. The status update only applies while the participant is
// still in fromStatus, so two concurrent check-ins cannot both succeed.
func (d *AttendanceDAO) CheckIn(ctx context.Context, participantID uuid.UUID, fromStatus string, record AttendanceRecord) (AttendanceRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.ParticipantID = participantID

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Participant{}).
			Where("id = ? AND status = ?", participantID, fromStatus).
			Updates(map[string]any{"status": "checked-in", "bus_number": record.BusNumber})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStatusConflict
		}

		if err := tx.Create(&record).Error; err != nil {
			if isUniqueViolation(err, "uni_attendance_open_participant") {
				return ErrOpenAttendanceExists
			}

			return err
		}

		return nil
	})
	if err != nil {
		return AttendanceRecord{}, err
	}

	return record, nil
}

// CheckOut closes the open record and marks the participant checked out.
func (d *AttendanceDAO) CheckOut(ctx context.Context, participantID, recordID uuid.UUID, at time.Time) (AttendanceRecord, error) {
	var record AttendanceRecord

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&AttendanceRecord{}).
			Where("id = ? AND participant_id = ? AND check_out_time IS NULL", recordID, participantID).
			Update("check_out_time", at)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAttendanceNotFound
		}

		result = tx.Model(&Participant{}).
			Where("id = ?", participantID).
			Update("status", "checked-out")
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrParticipantNotFound
		}

		return tx.First(&record, "id = ?", recordID).Error
	})
	if err != nil {
		return AttendanceRecord{}, err
	}

	return record, nil
}

func (d *AttendanceDAO) FindOpenByParticipantID(ctx context.Context, participantID uuid.UUID) (AttendanceRecord, error) {
	var record AttendanceRecord

	result := d.db.WithContext(ctx).
		Where("participant_id = ? AND check_out_time IS NULL", participantID).
		Order("check_in_time DESC").
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AttendanceRecord{}, ErrAttendanceNotFound
		}

		return AttendanceRecord{}, result.Error
	}

	return record, nil
}

func (d *AttendanceDAO) Find(ctx context.Context, q AttendanceQuery) ([]AttendanceRow, error) {
	var rows []AttendanceRow

	tx := d.db.WithContext(ctx).
		Table("attendance_records AS a").
		Select(`a.*, p.full_name AS participant_name, p.ticket_id AS ticket_id, COALESCE(e.name, '') AS event_name`).
		Joins("JOIN participants p ON p.id = a.participant_id").
		Joins("LEFT JOIN events e ON e.id = a.event_id")
	if q.EventID != nil {
		tx = tx.Where("a.event_id = ?", *q.EventID)
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		tx = tx.Where("p.full_name ILIKE ? OR p.ticket_id ILIKE ? OR a.bus_number ILIKE ?", pattern, pattern, pattern)
	}

	result := tx.Order("a.check_in_time DESC").Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
