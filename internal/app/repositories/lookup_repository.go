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

// Role and status are small lookup tables that share the same access
// pattern, so both repositories live here.

const roleColumns = `id, role, is_deleted`

// RoleRepository handles database operations for roles. Roles are
// soft-deleted so historical users keep a resolvable role id.
type RoleRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db, deletePolicy: DeleteSoft}
}

func scanRole(row pgx.Row) (*models.Role, error) {
	var role models.Role
	if err := row.Scan(&role.ID, &role.Role, &role.IsDeleted); err != nil {
		return nil, err
	}
	return &role, nil
}

// Create inserts a new role. Role names are unique among active roles.
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) (*models.Role, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM roles WHERE role = $1 AND is_deleted = FALSE)`, role.Role).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking role name: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate role: %s", role.Role))
	}

	query := `INSERT INTO roles (role) VALUES ($1) RETURNING ` + roleColumns

	created, err := scanRole(r.db.QueryRow(ctx, query, role.Role))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate role: %s", role.Role))
		}
		return nil, fmt.Errorf("error creating role: %w", err)
	}

	return created, nil
}

// GetByID retrieves an active role by id
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1 AND is_deleted = FALSE`

	role, err := scanRole(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No role with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	return role, nil
}

// GetByIDAny retrieves a role by id regardless of its deleted flag, so
// historical user rows keep resolving their role.
func (r *RoleRepository) GetByIDAny(ctx context.Context, id int64) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`

	role, err := scanRole(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No role with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	return role, nil
}

// List retrieves all active roles ordered by id
func (r *RoleRepository) List(ctx context.Context) ([]*models.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roleColumns+` FROM roles WHERE is_deleted = FALSE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

// Update applies a partial update to an active role and returns the
// updated row.
func (r *RoleRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Role, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE roles SET %s WHERE id = $%d AND is_deleted = FALSE RETURNING %s`,
		setCols, len(values)+1, roleColumns)

	role, err := scanRole(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No role with ID: %d", id))
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("Duplicate role name")
		}
		return nil, fmt.Errorf("error updating role: %w", err)
	}

	return role, nil
}

// Remove deletes a role per the repository's delete policy (soft).
func (r *RoleRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE roles SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`
	default:
		cmdQuery = `DELETE FROM roles WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		return fmt.Errorf("error deleting role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No role with ID: %d", id))
	}

	return nil
}

// statusJSToSQL maps the public "status" field to the description column.
var statusJSToSQL = map[string]string{
	"status": "description",
}

const statusColumns = `id, description`

// StatusRepository handles database operations for transaction statuses
type StatusRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewStatusRepository creates a new status repository
func NewStatusRepository(db *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{db: db, deletePolicy: DeleteHard}
}

func scanStatus(row pgx.Row) (*models.Status, error) {
	var st models.Status
	if err := row.Scan(&st.ID, &st.Description); err != nil {
		return nil, err
	}
	return &st, nil
}

// Create inserts a new status
func (r *StatusRepository) Create(ctx context.Context, status *models.Status) (*models.Status, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM statuses WHERE description = $1)`, status.Description).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking status description: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate status: %s", status.Description))
	}

	query := `INSERT INTO statuses (description) VALUES ($1) RETURNING ` + statusColumns

	created, err := scanStatus(r.db.QueryRow(ctx, query, status.Description))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate status: %s", status.Description))
		}
		return nil, fmt.Errorf("error creating status: %w", err)
	}

	return created, nil
}

// GetByID retrieves a status by id
func (r *StatusRepository) GetByID(ctx context.Context, id int64) (*models.Status, error) {
	query := `SELECT ` + statusColumns + ` FROM statuses WHERE id = $1`

	status, err := scanStatus(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No status with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving status: %w", err)
	}

	return status, nil
}

// List retrieves all statuses ordered by id
func (r *StatusRepository) List(ctx context.Context) ([]*models.Status, error) {
	rows, err := r.db.Query(ctx, `SELECT `+statusColumns+` FROM statuses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := []*models.Status{}
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

// Update applies a partial update to a status and returns the updated row.
func (r *StatusRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Status, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, statusJSToSQL)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE statuses SET %s WHERE id = $%d RETURNING %s`,
		setCols, len(values)+1, statusColumns)

	status, err := scanStatus(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No status with ID: %d", id))
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("Duplicate status description")
		}
		return nil, fmt.Errorf("error updating status: %w", err)
	}

	return status, nil
}

// Remove deletes a status per the repository's delete policy (hard).
func (r *StatusRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE statuses SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`
	default:
		cmdQuery = `DELETE FROM statuses WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError(fmt.Sprintf("Status ID: %d is still referenced by transactions", id))
		}
		return fmt.Errorf("error deleting status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No status with ID: %d", id))
	}

	return nil
}
