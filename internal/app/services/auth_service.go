package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
	"github.com/parkpilot/parkpilot/internal/pkg/auth"
)

// AuthService handles credential checks and token issuance
type AuthService struct {
	userRepo   *repositories.UserRepository
	podiumRepo *repositories.PodiumRepository
	jwtService *auth.JWTService
	hasher     *auth.PasswordHasher
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	podiumRepo *repositories.PodiumRepository,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		podiumRepo: podiumRepo,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     logger,
	}
}

// Login verifies credentials and issues a signed token. The token carries
// the user's role plus podium and location claims when the user has a
// podium assignment, so downstream guards can gate by site.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetCredentials(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			// Do not reveal whether the username exists
			return nil, apperrors.NewUnauthorizedError("Invalid username or password")
		}
		return nil, err
	}

	if !s.hasher.Compare(user.Password, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.NewUnauthorizedError("Invalid username or password")
	}

	var podiumID, locationID *int64
	if user.PodiumID != nil {
		podium, err := s.podiumRepo.GetByID(ctx, *user.PodiumID)
		if err == nil {
			podiumID = &podium.ID
			locationID = &podium.LocationID
		}
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username, user.RoleID, podiumID, locationID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{Token: token}, nil
}

// Register creates a new user account. The role defaults to valet when the
// request omits it.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
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

	s.logger.Info().Int64("userId", created.ID).Str("username", created.Username).Msg("User registered")
	return created, nil
}
