package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
	"github.com/parkpilot/parkpilot/internal/pkg/auth"
)

// UserService handles user account operations
type UserService struct {
	userRepo *repositories.UserRepository
	hasher   *auth.PasswordHasher
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, hasher *auth.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher, logger: logger}
}

// Create adds a new user with a hashed password
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	roleID := req.RoleID
	if roleID == 0 {
		roleID = models.RoleValet
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		RoleID:    roleID,
		PodiumID:  req.PodiumID,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", created.ID).Str("username", created.Username).Msg("User created")
	return created, nil
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// List retrieves all users
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// Update applies a partial update. A plaintext password in the request is
// hashed before it joins the update set.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	data := req.UpdateData()

	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		data.Set("password", hash)
	}

	return s.userRepo.Update(ctx, id, data)
}

// IncrementParked bumps a valet's total_parked counter by one
func (s *UserService) IncrementParked(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.IncrementParked(ctx, nil, id)
}

// Remove deletes a user
func (s *UserService) Remove(ctx context.Context, id int64) error {
	if err := s.userRepo.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", id).Msg("User deleted")
	return nil
}
