package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
)

// RoleService handles role lookup-table operations
type RoleService struct {
	roleRepo *repositories.RoleRepository
	logger   zerolog.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo *repositories.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roleRepo: roleRepo, logger: logger}
}

// Create adds a new role
func (s *RoleService) Create(ctx context.Context, req *dto.CreateRoleRequest) (*models.Role, error) {
	created, err := s.roleRepo.Create(ctx, &models.Role{Role: req.Role})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roleId", created.ID).Str("role", created.Role).Msg("Role created")
	return created, nil
}

// GetByID retrieves an active role by id
func (s *RoleService) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}

// List retrieves all active roles
func (s *RoleService) List(ctx context.Context) ([]*models.Role, error) {
	return s.roleRepo.List(ctx)
}

// Update applies a partial update to a role
func (s *RoleService) Update(ctx context.Context, id int64, req *dto.UpdateRoleRequest) (*models.Role, error) {
	return s.roleRepo.Update(ctx, id, req.UpdateData())
}

// Remove soft-deletes a role
func (s *RoleService) Remove(ctx context.Context, id int64) error {
	return s.roleRepo.Remove(ctx, id)
}

// StatusService handles transaction status lookup-table operations
type StatusService struct {
	statusRepo *repositories.StatusRepository
	logger     zerolog.Logger
}

// NewStatusService creates a new StatusService
func NewStatusService(statusRepo *repositories.StatusRepository, logger zerolog.Logger) *StatusService {
	return &StatusService{statusRepo: statusRepo, logger: logger}
}

// Create adds a new status
func (s *StatusService) Create(ctx context.Context, req *dto.CreateStatusRequest) (*models.Status, error) {
	created, err := s.statusRepo.Create(ctx, &models.Status{Description: req.Status})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("statusId", created.ID).Str("status", created.Description).Msg("Status created")
	return created, nil
}

// GetByID retrieves a status by id
func (s *StatusService) GetByID(ctx context.Context, id int64) (*models.Status, error) {
	return s.statusRepo.GetByID(ctx, id)
}

// List retrieves all statuses
func (s *StatusService) List(ctx context.Context) ([]*models.Status, error) {
	return s.statusRepo.List(ctx)
}

// Update applies a partial update to a status
func (s *StatusService) Update(ctx context.Context, id int64, req *dto.UpdateStatusRequest) (*models.Status, error) {
	return s.statusRepo.Update(ctx, id, req.UpdateData())
}

// Remove deletes a status
func (s *StatusService) Remove(ctx context.Context, id int64) error {
	return s.statusRepo.Remove(ctx, id)
}
