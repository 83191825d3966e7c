package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
)

// LocationService handles valet site operations
type LocationService struct {
	locationRepo *repositories.LocationRepository
	logger       zerolog.Logger
}

// NewLocationService creates a new LocationService
func NewLocationService(locationRepo *repositories.LocationRepository, logger zerolog.Logger) *LocationService {
	return &LocationService{locationRepo: locationRepo, logger: logger}
}

// Create adds a new location
func (s *LocationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*models.Location, error) {
	location := &models.Location{
		Name:     req.Name,
		RegionID: req.RegionID,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
	}

	created, err := s.locationRepo.Create(ctx, location)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("locationId", created.ID).Str("name", created.Name).Msg("Location created")
	return created, nil
}

// GetByID retrieves a location by id
func (s *LocationService) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	return s.locationRepo.GetByID(ctx, id)
}

// SearchByName retrieves locations matching a name fragment
func (s *LocationService) SearchByName(ctx context.Context, name string) ([]*models.Location, error) {
	return s.locationRepo.SearchByName(ctx, name)
}

// List retrieves all locations
func (s *LocationService) List(ctx context.Context) ([]*models.Location, error) {
	return s.locationRepo.List(ctx)
}

// Update applies a partial update to a location
func (s *LocationService) Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*models.Location, error) {
	return s.locationRepo.Update(ctx, id, req.UpdateData())
}

// Remove deletes a location
func (s *LocationService) Remove(ctx context.Context, id int64) error {
	return s.locationRepo.Remove(ctx, id)
}
