package service

import (
	"context"
	"fmt"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/repository"
)

var ErrParticipantNotFound = repository.ErrParticipantNotFound

type ParticipantRepository interface {
	FindByTicketID(ctx context.Context, ticketID string) (domain.Participant, error)
	Find(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error)
}

type ParticipantService struct {
	repo ParticipantRepository
}

func NewParticipantService(repo ParticipantRepository) *ParticipantService {
	return &ParticipantService{
		repo: repo,
	}
}

func (s *ParticipantService) GetParticipants(ctx context.Context, filter domain.ParticipantFilter) ([]domain.Participant, error) {
	participants, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) GetParticipantByTicketID(ctx context.Context, ticketID string) (domain.Participant, error) {
	participant, err := s.repo.FindByTicketID(ctx, ticketID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByTicketID -> %w", err)
	}

	return participant, nil
}
