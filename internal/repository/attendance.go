package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/repository/dao"
)

var (
	ErrAttendanceNotFound   = dao.ErrAttendanceNotFound
	ErrOpenAttendanceExists = dao.ErrOpenAttendanceExists
)

type AttendanceDAO interface {
	CheckIn(ctx context.Context, participantID uuid.UUID, fromStatus string, record dao.AttendanceRecord) (dao.AttendanceRecord, error)
	CheckOut(ctx context.Context, participantID, recordID uuid.UUID, at time.Time) (dao.AttendanceRecord, error)
	FindOpenByParticipantID(ctx context.Context, participantID uuid.UUID) (dao.AttendanceRecord, error)
	Find(ctx context.Context, q dao.AttendanceQuery) ([]dao.AttendanceRow, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

// CheckIn records the check-in if the participant is still in fromStatus.
func (r *AttendanceRepository) CheckIn(ctx context.Context, participantID uuid.UUID, fromStatus domain.ParticipantStatus, record domain.AttendanceRecord) (domain.AttendanceRecord, error) {
	created, err := r.dao.CheckIn(ctx, participantID, string(fromStatus), r.domainToDao(record))
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("r.dao.CheckIn -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AttendanceRepository) CheckOut(ctx context.Context, participantID, recordID uuid.UUID, at time.Time) (domain.AttendanceRecord, error) {
	closed, err := r.dao.CheckOut(ctx, participantID, recordID, at)
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("r.dao.CheckOut -> %w", err)
	}

	return r.daoToDomain(closed), nil
}

func (r *AttendanceRepository) FindOpenByParticipantID(ctx context.Context, participantID uuid.UUID) (domain.AttendanceRecord, error) {
	found, err := r.dao.FindOpenByParticipantID(ctx, participantID)
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("r.dao.FindOpenByParticipantID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AttendanceRepository) Find(ctx context.Context, filter domain.AttendanceFilter) ([]domain.AttendanceEntry, error) {
	rows, err := r.dao.Find(ctx, dao.AttendanceQuery{
		EventID: filter.EventID,
		Search:  filter.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	entries := make([]domain.AttendanceEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.AttendanceEntry{
			AttendanceRecord: r.daoToDomain(row.AttendanceRecord),
			ParticipantName:  row.ParticipantName,
			TicketID:         row.TicketID,
			EventName:        row.EventName,
		}
	}

	return entries, nil
}

func (r *AttendanceRepository) domainToDao(record domain.AttendanceRecord) dao.AttendanceRecord {
	return dao.AttendanceRecord{
		ID:            record.ID,
		ParticipantID: record.ParticipantID,
		EventID:       record.EventID,
		CheckInTime:   record.CheckInTime,
		CheckOutTime:  record.CheckOutTime,
		BusNumber:     record.BusNumber,
		StaffMember:   record.StaffMember,
		Location:      record.Location,
	}
}

func (r *AttendanceRepository) daoToDomain(record dao.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		ID:            record.ID,
		ParticipantID: record.ParticipantID,
		EventID:       record.EventID,
		CheckInTime:   record.CheckInTime,
		CheckOutTime:  record.CheckOutTime,
		BusNumber:     record.BusNumber,
		StaffMember:   record.StaffMember,
		Location:      record.Location,
	}
}
