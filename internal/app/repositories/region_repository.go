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

const regionColumns = `id, name`

// RegionRepository handles database operations for regions
type RegionRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *pgxpool.Pool) *RegionRepository {
	return &RegionRepository{db: db, deletePolicy: DeleteHard}
}

func scanRegion(row pgx.Row) (*models.Region, error) {
	var reg models.Region
	if err := row.Scan(&reg.ID, &reg.Name); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Create inserts a new region. Region names are unique.
func (r *RegionRepository) Create(ctx context.Context, region *models.Region) (*models.Region, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM regions WHERE name = $1)`, region.Name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking region name: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate region name: %s", region.Name))
	}

	query := `INSERT INTO regions (name) VALUES ($1) RETURNING ` + regionColumns

	created, err := scanRegion(r.db.QueryRow(ctx, query, region.Name))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate region name: %s", region.Name))
		}
		return nil, fmt.Errorf("error creating region: %w", err)
	}

	return created, nil
}

// GetByID retrieves a region by id
func (r *RegionRepository) GetByID(ctx context.Context, id int64) (*models.Region, error) {
	query := `SELECT ` + regionColumns + ` FROM regions WHERE id = $1`

	region, err := scanRegion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No region with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving region: %w", err)
	}

	return region, nil
}

// SearchByName retrieves regions whose name contains the fragment.
func (r *RegionRepository) SearchByName(ctx context.Context, name string) ([]*models.Region, error) {
	query := `SELECT ` + regionColumns + ` FROM regions WHERE name ILIKE $1 ORDER BY id`

	regions, err := r.queryRegions(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No region with name: %s", name))
	}
	return regions, nil
}

// List retrieves all regions ordered by id
func (r *RegionRepository) List(ctx context.Context) ([]*models.Region, error) {
	query := `SELECT ` + regionColumns + ` FROM regions ORDER BY id`
	return r.queryRegions(ctx, query)
}

func (r *RegionRepository) queryRegions(ctx context.Context, query string, args ...interface{}) ([]*models.Region, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := []*models.Region{}
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

// Update applies a partial update to a region and returns the updated row.
func (r *RegionRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Region, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE regions SET %s WHERE id = $%d RETURNING %s`,
		setCols, len(values)+1, regionColumns)

	region, err := scanRegion(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No region with ID: %d", id))
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("Duplicate region name")
		}
		return nil, fmt.Errorf("error updating region: %w", err)
	}

	return region, nil
}

// Remove deletes a region per the repository's delete policy (hard).
func (r *RegionRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE regions SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`
	default:
		cmdQuery = `DELETE FROM regions WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError(fmt.Sprintf("Region ID: %d is still referenced by locations", id))
		}
		return fmt.Errorf("error deleting region: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No region with ID: %d", id))
	}

	return nil
}
