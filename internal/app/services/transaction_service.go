package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
	"github.com/parkpilot/parkpilot/internal/db"
)

// TransactionService handles the vehicle lifecycle event log
type TransactionService struct {
	transactionRepo *repositories.TransactionRepository
	userRepo        *repositories.UserRepository
	database        *db.PostgresDB
	logger          zerolog.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo *repositories.TransactionRepository,
	userRepo *repositories.UserRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		database:        database,
		logger:          logger,
	}
}

// Create logs a new transaction. The status defaults to checked-in. When a
// transaction lands directly in parked, the valet's total_parked counter
// moves in the same database transaction as the insert.
func (s *TransactionService) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	statusID := req.StatusID
	if statusID == 0 {
		statusID = models.StatusCheckedIn
	}

	transaction := &models.Transaction{
		UserID:     req.UserID,
		VehicleID:  req.VehicleID,
		PodiumID:   req.PodiumID,
		LocationID: req.LocationID,
		StatusID:   statusID,
	}

	var created *models.Transaction
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = s.transactionRepo.Create(ctx, tx, transaction)
		if err != nil {
			return err
		}
		if statusID == models.StatusParked {
			_, err = s.userRepo.IncrementParked(ctx, tx, created.UserID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("transactionId", created.ID).
		Int64("vehicleId", created.VehicleID).
		Int64("statusId", created.StatusID).
		Msg("Transaction created")
	return created, nil
}

// GetByID retrieves a transaction by id
func (s *TransactionService) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// OpenByVehicle retrieves a vehicle's open transaction, nil when the
// vehicle has no transaction short of checked-out.
func (s *TransactionService) OpenByVehicle(ctx context.Context, vehicleID int64) (*models.Transaction, error) {
	return s.transactionRepo.OpenByVehicle(ctx, vehicleID)
}

// List retrieves all transactions in chronological order
func (s *TransactionService) List(ctx context.Context) ([]*models.Transaction, error) {
	return s.transactionRepo.List(ctx)
}

// Update applies a partial update. A move into parked bumps the assigned
// valet's total_parked counter.
func (s *TransactionService) Update(ctx context.Context, id int64, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	reachedParked := false
	if req.StatusID != nil && *req.StatusID == models.StatusParked {
		current, err := s.transactionRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		reachedParked = current.StatusID != models.StatusParked
	}

	updated, err := s.transactionRepo.Update(ctx, id, req.UpdateData())
	if err != nil {
		return nil, err
	}

	if reachedParked {
		if _, err := s.userRepo.IncrementParked(ctx, nil, updated.UserID); err != nil {
			s.logger.Error().Err(err).
				Int64("transactionId", updated.ID).
				Int64("userId", updated.UserID).
				Msg("Failed to bump total_parked")
		}
	}

	return updated, nil
}

// Remove deletes a transaction
func (s *TransactionService) Remove(ctx context.Context, id int64) error {
	return s.transactionRepo.Remove(ctx, id)
}
