package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
)

// VehicleService handles vehicle operations
type VehicleService struct {
	vehicleRepo *repositories.VehicleRepository
	logger      zerolog.Logger
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo *repositories.VehicleRepository, logger zerolog.Logger) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo, logger: logger}
}

// Create adds a new vehicle
func (s *VehicleService) Create(ctx context.Context, req *dto.CreateVehicleRequest) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{
		TicketNum: req.TicketNum,
		StatusID:  req.StatusID,
		Mobile:    req.Mobile,
		Color:     req.Color,
		Make:      req.Make,
		Damages:   req.Damages,
		Notes:     req.Notes,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("vehicleId", created.ID).Int64("ticketNum", created.TicketNum).Msg("Vehicle created")
	return created, nil
}

// GetByID retrieves a vehicle by id
func (s *VehicleService) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

// List retrieves all vehicles
func (s *VehicleService) List(ctx context.Context) ([]*models.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// ListByStatus retrieves vehicles in one lifecycle status
func (s *VehicleService) ListByStatus(ctx context.Context, statusID int64) ([]*models.Vehicle, error) {
	return s.vehicleRepo.ListByStatus(ctx, statusID)
}

// SearchByMobile retrieves vehicles whose guest mobile number contains the
// fragment
func (s *VehicleService) SearchByMobile(ctx context.Context, mobile string) ([]*models.Vehicle, error) {
	return s.vehicleRepo.SearchByMobile(ctx, mobile)
}

// Update applies a partial update to a vehicle
func (s *VehicleService) Update(ctx context.Context, id int64, req *dto.UpdateVehicleRequest) (*models.Vehicle, error) {
	return s.vehicleRepo.Update(ctx, id, req.UpdateData())
}

// Remove deletes a vehicle
func (s *VehicleService) Remove(ctx context.Context, id int64) error {
	return s.vehicleRepo.Remove(ctx, id)
}
