package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
	"github.com/parkpilot/parkpilot/internal/pkg/dberrors"
	"github.com/parkpilot/parkpilot/internal/pkg/helpers"
)

// transactionJSToSQL maps public field names to transactions columns for
// partial updates.
var transactionJSToSQL = map[string]string{
	"userId":     "user_id",
	"vehicleId":  "vehicle_id",
	"podiumId":   "podium_id",
	"locationId": "location_id",
	"statusId":   "status_id",
}

const transactionColumns = `id, user_id, vehicle_id, podium_id, location_id, status_id, transaction_time, updated_at`

// TransactionRepository handles database operations for transactions
type TransactionRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db, deletePolicy: DeleteHard}
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.VehicleID,
		&t.PodiumID,
		&t.LocationID,
		&t.StatusID,
		&t.TransactionTime,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new transaction inside tx (pass nil to run on the pool).
// Foreign key violations surface as bad requests naming the reference.
func (r *TransactionRepository) Create(ctx context.Context, tx pgx.Tx, transaction *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, vehicle_id, podium_id, location_id, status_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + transactionColumns

	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query,
			transaction.UserID, transaction.VehicleID, transaction.PodiumID,
			transaction.LocationID, transaction.StatusID)
	} else {
		row = r.db.QueryRow(ctx, query,
			transaction.UserID, transaction.VehicleID, transaction.PodiumID,
			transaction.LocationID, transaction.StatusID)
	}

	created, err := scanTransaction(row)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Transaction references a user, vehicle, podium or location that does not exist")
		}
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}

	return created, nil
}

// GetByID retrieves a transaction by id
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No transaction with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving transaction: %w", err)
	}

	return transaction, nil
}

// OpenByVehicle returns the open (not checked-out) transaction for a vehicle,
// or nil when the vehicle has none.
func (r *TransactionRepository) OpenByVehicle(ctx context.Context, vehicleID int64) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE vehicle_id = $1 AND status_id < $2
		ORDER BY transaction_time DESC
		LIMIT 1`

	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, vehicleID, models.StatusCheckedOut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving open transaction: %w", err)
	}

	return transaction, nil
}

// List retrieves all transactions ordered by transaction time.
func (r *TransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY transaction_time, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

// Update applies a partial update to a transaction, stamping updated_at, and
// returns the updated row.
func (r *TransactionRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Transaction, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, transactionJSToSQL)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE transactions SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = $%d RETURNING %s`,
		setCols, len(values)+1, transactionColumns)

	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No transaction with ID: %d", id))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("Transaction references a user, vehicle, podium or location that does not exist")
		}
		return nil, fmt.Errorf("error updating transaction: %w", err)
	}

	return transaction, nil
}

// Remove deletes a transaction by id per the repository's delete policy
// (hard). Voiding instead of deleting is the caller's policy call.
func (r *TransactionRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE transactions SET is_deleted = TRUE WHERE id = $1`
	default:
		cmdQuery = `DELETE FROM transactions WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No transaction with ID: %d", id))
	}

	return nil
}
