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

// podiumJSToSQL maps public field names to podiums columns for partial
// updates.
var podiumJSToSQL = map[string]string{
	"locationId": "location_id",
}

const podiumColumns = `id, name, location_id, is_deleted`

// PodiumRepository handles database operations for podiums. Podiums are
// soft-deleted: deleted rows stay queryable by raw id (GetByIDAny) but are
// excluded from every other read.
type PodiumRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewPodiumRepository creates a new podium repository
func NewPodiumRepository(db *pgxpool.Pool) *PodiumRepository {
	return &PodiumRepository{db: db, deletePolicy: DeleteSoft}
}

func scanPodium(row pgx.Row) (*models.Podium, error) {
	var p models.Podium
	if err := row.Scan(&p.ID, &p.Name, &p.LocationID, &p.IsDeleted); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new podium. Fails with a duplicate error when an active
// podium with the same name exists at the location.
func (r *PodiumRepository) Create(ctx context.Context, podium *models.Podium) (*models.Podium, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM podiums WHERE name = $1 AND location_id = $2 AND is_deleted = FALSE)`,
		podium.Name, podium.LocationID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking podium name: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(
			fmt.Sprintf("Duplicate podium: %s already exists at location ID: %d", podium.Name, podium.LocationID))
	}

	query := `
		INSERT INTO podiums (name, location_id)
		VALUES ($1, $2)
		RETURNING ` + podiumColumns

	created, err := scanPodium(r.db.QueryRow(ctx, query, podium.Name, podium.LocationID))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(
				fmt.Sprintf("Duplicate podium: %s already exists at location ID: %d", podium.Name, podium.LocationID))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("No location with ID: %d", podium.LocationID))
		}
		return nil, fmt.Errorf("error creating podium: %w", err)
	}

	return created, nil
}

// GetByID retrieves an active podium by id
func (r *PodiumRepository) GetByID(ctx context.Context, id int64) (*models.Podium, error) {
	query := `SELECT ` + podiumColumns + ` FROM podiums WHERE id = $1 AND is_deleted = FALSE`

	podium, err := scanPodium(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No podium with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving podium: %w", err)
	}

	return podium, nil
}

// GetByIDAny retrieves a podium by id regardless of its deleted flag.
func (r *PodiumRepository) GetByIDAny(ctx context.Context, id int64) (*models.Podium, error) {
	query := `SELECT ` + podiumColumns + ` FROM podiums WHERE id = $1`

	podium, err := scanPodium(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No podium with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving podium: %w", err)
	}

	return podium, nil
}

// SearchByName retrieves active podiums whose name contains the fragment.
func (r *PodiumRepository) SearchByName(ctx context.Context, name string) ([]*models.Podium, error) {
	query := `SELECT ` + podiumColumns + ` FROM podiums WHERE name ILIKE $1 AND is_deleted = FALSE ORDER BY id`

	podiums, err := r.queryPodiums(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	if len(podiums) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No podium with name: %s", name))
	}
	return podiums, nil
}

// List retrieves all active podiums ordered by id.
func (r *PodiumRepository) List(ctx context.Context) ([]*models.Podium, error) {
	query := `SELECT ` + podiumColumns + ` FROM podiums WHERE is_deleted = FALSE ORDER BY id`
	return r.queryPodiums(ctx, query)
}

func (r *PodiumRepository) queryPodiums(ctx context.Context, query string, args ...interface{}) ([]*models.Podium, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	podiums := []*models.Podium{}
	for rows.Next() {
		podium, err := scanPodium(rows)
		if err != nil {
			return nil, err
		}
		podiums = append(podiums, podium)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return podiums, nil
}

// Update applies a partial update to an active podium and returns the
// updated row.
func (r *PodiumRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Podium, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, podiumJSToSQL)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE podiums SET %s WHERE id = $%d AND is_deleted = FALSE RETURNING %s`,
		setCols, len(values)+1, podiumColumns)

	podium, err := scanPodium(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No podium with ID: %d", id))
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("Duplicate podium name at location")
		}
		return nil, fmt.Errorf("error updating podium: %w", err)
	}

	return podium, nil
}

// Remove deletes a podium per the repository's delete policy (soft).
func (r *PodiumRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE podiums SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`
	default:
		cmdQuery = `DELETE FROM podiums WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		return fmt.Errorf("error deleting podium: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No podium with ID: %d", id))
	}

	return nil
}
