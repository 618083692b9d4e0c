package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrTicketIDExists      = dao.ErrTicketIDExists
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Participant, error)
	FindByTicketID(ctx context.Context, ticketID string) (dao.Participant, error)
	Find(ctx context.Context, q dao.ParticipantQuery) ([]dao.Participant, error)
	CountByStatus(ctx context.Context, eventID uuid.UUID) ([]dao.StatusCount, error)
	CountByLocation(ctx context.Context, eventID uuid.UUID) ([]dao.LocationCount, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindByTicketID(ctx context.Context, ticketID string) (domain.Participant, error) {
	found, err := r.dao.FindByTicketID(ctx, ticketID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByTicketID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) Find(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	found, err := r.dao.Find(ctx, dao.ParticipantQuery{
		EventID: filter.EventID,
		Status:  string(filter.Status),
		Email:   filter.Email,
		Search:  filter.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.daoToDomain(p)
	}

	return participants, nil
}

func (r *ParticipantRepository) CountByStatus(ctx context.Context, eventID uuid.UUID) (map[domain.ParticipantStatus]int, error) {
	rows, err := r.dao.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByStatus -> %w", err)
	}

	counts := make(map[domain.ParticipantStatus]int, len(rows))
	for _, row := range rows {
		counts[domain.ParticipantStatus(row.Status)] = row.Count
	}

	return counts, nil
}

func (r *ParticipantRepository) CountByLocation(ctx context.Context, eventID uuid.UUID) ([]domain.LocationStats, error) {
	rows, err := r.dao.CountByLocation(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByLocation -> %w", err)
	}

	stats := make([]domain.LocationStats, len(rows))
	for i, row := range rows {
		stats[i] = domain.LocationStats{
			Location:   row.Location,
			Registered: row.Registered,
			CheckedIn:  row.CheckedIn,
		}
	}

	return stats, nil
}

func (r *ParticipantRepository) domainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:                         p.ID,
		FullName:                   p.FullName,
		ContactNumber:              p.ContactNumber,
		Email:                      p.Email,
		ChurchAssembly:             p.ChurchAssembly,
		PreferredDepartureLocation: p.PreferredDepartureLocation,
		EmergencyContact:           p.EmergencyContact,
		EmergencyContactNumber:     p.EmergencyContactNumber,
		EventID:                    p.EventID,
		TicketID:                   p.TicketID,
		QRCode:                     p.QRCode,
		RegistrationDate:           p.RegistrationDate,
		Status:                     string(p.Status),
		BusNumber:                  p.BusNumber,
		NotifyEmail:                p.NotificationPreference.Email,
		NotifySMS:                  p.NotificationPreference.SMS,
		NotifyWhatsApp:             p.NotificationPreference.WhatsApp,
	}
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:                         p.ID,
		FullName:                   p.FullName,
		ContactNumber:              p.ContactNumber,
		Email:                      p.Email,
		ChurchAssembly:             p.ChurchAssembly,
		PreferredDepartureLocation: p.PreferredDepartureLocation,
		EmergencyContact:           p.EmergencyContact,
		EmergencyContactNumber:     p.EmergencyContactNumber,
		EventID:                    p.EventID,
		TicketID:                   p.TicketID,
		QRCode:                     p.QRCode,
		RegistrationDate:           p.RegistrationDate,
		Status:                     domain.ParticipantStatus(p.Status),
		BusNumber:                  p.BusNumber,
		NotificationPreference: domain.NotificationPreference{
			Email:    p.NotifyEmail,
			SMS:      p.NotifySMS,
			WhatsApp: p.NotifyWhatsApp,
		},
	}
}
