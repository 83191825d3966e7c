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

// locationJSToSQL maps public field names to locations columns for partial
// updates.
var locationJSToSQL = map[string]string{
	"regionId": "region_id",
	"zipCode":  "zip_code",
}

const locationColumns = `id, name, region_id, address, city, state, zip_code, phone`

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db, deletePolicy: DeleteHard}
}

func scanLocation(row pgx.Row) (*models.Location, error) {
	var l models.Location
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.RegionID,
		&l.Address,
		&l.City,
		&l.State,
		&l.ZipCode,
		&l.Phone,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new location. Fails with a duplicate error when the name
// is taken.
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM locations WHERE name = $1)`,
		location.Name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking location name: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate location: %s", location.Name))
	}

	query := `
		INSERT INTO locations (name, region_id, address, city, state, zip_code, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + locationColumns

	created, err := scanLocation(r.db.QueryRow(ctx, query,
		location.Name,
		location.RegionID,
		location.Address,
		location.City,
		location.State,
		location.ZipCode,
		location.Phone,
	))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate location: %s", location.Name))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("No region with ID: %d", location.RegionID))
		}
		return nil, fmt.Errorf("error creating location: %w", err)
	}

	return created, nil
}

// GetByID retrieves a location by id
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	location, err := scanLocation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No location with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving location: %w", err)
	}

	return location, nil
}

// SearchByName retrieves locations whose name contains the given fragment.
func (r *LocationRepository) SearchByName(ctx context.Context, name string) ([]*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE name ILIKE $1 ORDER BY id`

	locations, err := r.queryLocations(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No location with name: %s", name))
	}
	return locations, nil
}

// List retrieves all locations ordered by id.
func (r *LocationRepository) List(ctx context.Context) ([]*models.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY id`
	return r.queryLocations(ctx, query)
}

func (r *LocationRepository) queryLocations(ctx context.Context, query string, args ...interface{}) ([]*models.Location, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []*models.Location{}
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

// Update applies a partial update to a location and returns the updated row.
func (r *LocationRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Location, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, locationJSToSQL)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE locations SET %s WHERE id = $%d RETURNING %s`,
		setCols, len(values)+1, locationColumns)

	location, err := scanLocation(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No location with ID: %d", id))
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("Duplicate location name")
		}
		return nil, fmt.Errorf("error updating location: %w", err)
	}

	return location, nil
}

// Remove deletes a location by id per the repository's delete policy (hard).
func (r *LocationRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE locations SET is_deleted = TRUE WHERE id = $1`
	default:
		cmdQuery = `DELETE FROM locations WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		return fmt.Errorf("error deleting location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No location with ID: %d", id))
	}

	return nil
}
