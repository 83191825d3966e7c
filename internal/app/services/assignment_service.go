package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
)

// AssignmentService manages user assignments to podiums, locations and
// regions
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository, logger zerolog.Logger) *AssignmentService {
	return &AssignmentService{assignmentRepo: assignmentRepo, logger: logger}
}

// AssignPodium links a user to a podium
func (s *AssignmentService) AssignPodium(ctx context.Context, userID, podiumID int64) (*models.UserPodium, error) {
	assigned, err := s.assignmentRepo.AssignPodium(ctx, userID, podiumID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userId", userID).Int64("podiumId", podiumID).Msg("Podium assigned")
	return assigned, nil
}

// PodiumsByUser lists a user's podium assignments
func (s *AssignmentService) PodiumsByUser(ctx context.Context, userID int64) ([]*models.AssignedPodium, error) {
	return s.assignmentRepo.PodiumsByUser(ctx, userID)
}

// UnassignPodium removes a user's podium assignment
func (s *AssignmentService) UnassignPodium(ctx context.Context, userID, podiumID int64) error {
	return s.assignmentRepo.UnassignPodium(ctx, userID, podiumID)
}

// AssignLocation links a user to a location
func (s *AssignmentService) AssignLocation(ctx context.Context, userID, locationID int64) (*models.UserLocation, error) {
	assigned, err := s.assignmentRepo.AssignLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userId", userID).Int64("locationId", locationID).Msg("Location assigned")
	return assigned, nil
}

// LocationsByUser lists a user's location assignments
func (s *AssignmentService) LocationsByUser(ctx context.Context, userID int64) ([]*models.Location, error) {
	return s.assignmentRepo.LocationsByUser(ctx, userID)
}

// UnassignLocation removes a user's location assignment
func (s *AssignmentService) UnassignLocation(ctx context.Context, userID, locationID int64) error {
	return s.assignmentRepo.UnassignLocation(ctx, userID, locationID)
}

// AssignRegion links a user to a region
func (s *AssignmentService) AssignRegion(ctx context.Context, userID, regionID int64) (*models.UserRegion, error) {
	assigned, err := s.assignmentRepo.AssignRegion(ctx, userID, regionID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("userId", userID).Int64("regionId", regionID).Msg("Region assigned")
	return assigned, nil
}

// RegionsByUser lists a user's region assignments
func (s *AssignmentService) RegionsByUser(ctx context.Context, userID int64) ([]*models.Region, error) {
	return s.assignmentRepo.RegionsByUser(ctx, userID)
}

// UnassignRegion removes a user's region assignment
func (s *AssignmentService) UnassignRegion(ctx context.Context, userID, regionID int64) error {
	return s.assignmentRepo.UnassignRegion(ctx, userID, regionID)
}
