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

// userJSToSQL maps public field names to users columns for partial updates.
var userJSToSQL = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"totalParked": "total_parked",
	"roleId":      "role_id",
	"podiumId":    "podium_id",
}

const userColumns = `id, username, first_name, last_name, email, phone, total_parked, role_id, podium_id`

// UserRepository handles database operations for users
type UserRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db, deletePolicy: DeleteHard}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.TotalParked,
		&u.RoleID,
		&u.PodiumID,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The password must already be hashed. Fails with
// a duplicate error when the username is taken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		user.Username).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate username: %s", user.Username))
	}

	query := `
		INSERT INTO users (username, password, first_name, last_name, email, phone, total_parked, role_id, podium_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.TotalParked,
		user.RoleID,
		user.PodiumID,
	))
	if err != nil {
		// the check above races with concurrent inserts; the unique
		// constraint is the authority
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate username: %s", user.Username))
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No user with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No user with username: %s", username))
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetCredentials retrieves a user including the password hash, for the
// authenticate comparison only. Callers must never serialize the result.
func (r *UserRepository) GetCredentials(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password, first_name, last_name, email, phone, total_parked, role_id, podium_id
		FROM users
		WHERE username = $1`

	var u models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.TotalParked,
		&u.RoleID,
		&u.PodiumID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No user with username: %s", username))
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &u, nil
}

// List retrieves all users ordered by id. An empty result is a valid empty
// collection.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Update applies a partial update to a user and returns the updated row.
func (r *UserRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.User, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, userJSToSQL)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		setCols, len(values)+1, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No user with ID: %d", id))
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("Duplicate user field value")
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

// IncrementParked bumps a valet's total_parked counter by one.
func (r *UserRepository) IncrementParked(ctx context.Context, tx pgx.Tx, id int64) (*models.User, error) {
	query := `
		UPDATE users
		SET total_parked = total_parked + 1
		WHERE id = $1
		RETURNING ` + userColumns

	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query, id)
	} else {
		row = r.db.QueryRow(ctx, query, id)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No user with ID: %d", id))
		}
		return nil, fmt.Errorf("error incrementing total parked: %w", err)
	}

	return user, nil
}

// Remove deletes a user by id per the repository's delete policy (hard).
func (r *UserRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE users SET is_deleted = TRUE WHERE id = $1`
	default:
		cmdQuery = `DELETE FROM users WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No user with ID: %d", id))
	}

	return nil
}
