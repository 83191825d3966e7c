package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
)

// RegionService handles region operations
type RegionService struct {
	regionRepo *repositories.RegionRepository
	logger     zerolog.Logger
}

// NewRegionService creates a new RegionService
func NewRegionService(regionRepo *repositories.RegionRepository, logger zerolog.Logger) *RegionService {
	return &RegionService{regionRepo: regionRepo, logger: logger}
}

// Create adds a new region
func (s *RegionService) Create(ctx context.Context, req *dto.CreateRegionRequest) (*models.Region, error) {
	created, err := s.regionRepo.Create(ctx, &models.Region{Name: req.Name})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("regionId", created.ID).Str("name", created.Name).Msg("Region created")
	return created, nil
}

// GetByID retrieves a region by id
func (s *RegionService) GetByID(ctx context.Context, id int64) (*models.Region, error) {
	return s.regionRepo.GetByID(ctx, id)
}

// SearchByName retrieves regions matching a name fragment
func (s *RegionService) SearchByName(ctx context.Context, name string) ([]*models.Region, error) {
	return s.regionRepo.SearchByName(ctx, name)
}

// List retrieves all regions
func (s *RegionService) List(ctx context.Context) ([]*models.Region, error) {
	return s.regionRepo.List(ctx)
}

// Update applies a partial update to a region
func (s *RegionService) Update(ctx context.Context, id int64, req *dto.UpdateRegionRequest) (*models.Region, error) {
	return s.regionRepo.Update(ctx, id, req.UpdateData())
}

// Remove deletes a region
func (s *RegionService) Remove(ctx context.Context, id int64) error {
	return s.regionRepo.Remove(ctx, id)
}
