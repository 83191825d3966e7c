package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
)

// PodiumService handles valet stand operations
type PodiumService struct {
	podiumRepo *repositories.PodiumRepository
	logger     zerolog.Logger
}

// NewPodiumService creates a new PodiumService
func NewPodiumService(podiumRepo *repositories.PodiumRepository, logger zerolog.Logger) *PodiumService {
	return &PodiumService{podiumRepo: podiumRepo, logger: logger}
}

// Create adds a new podium
func (s *PodiumService) Create(ctx context.Context, req *dto.CreatePodiumRequest) (*models.Podium, error) {
	podium := &models.Podium{
		Name:       req.Name,
		LocationID: req.LocationID,
	}

	created, err := s.podiumRepo.Create(ctx, podium)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("podiumId", created.ID).Str("name", created.Name).Msg("Podium created")
	return created, nil
}

// GetByID retrieves an active podium by id
func (s *PodiumService) GetByID(ctx context.Context, id int64) (*models.Podium, error) {
	return s.podiumRepo.GetByID(ctx, id)
}

// SearchByName retrieves active podiums matching a name fragment
func (s *PodiumService) SearchByName(ctx context.Context, name string) ([]*models.Podium, error) {
	return s.podiumRepo.SearchByName(ctx, name)
}

// List retrieves all active podiums
func (s *PodiumService) List(ctx context.Context) ([]*models.Podium, error) {
	return s.podiumRepo.List(ctx)
}

// Update applies a partial update to an active podium
func (s *PodiumService) Update(ctx context.Context, id int64, req *dto.UpdatePodiumRequest) (*models.Podium, error) {
	return s.podiumRepo.Update(ctx, id, req.UpdateData())
}

// Remove soft-deletes a podium
func (s *PodiumService) Remove(ctx context.Context, id int64) error {
	return s.podiumRepo.Remove(ctx, id)
}
