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

// vehicleJSToSQL maps public field names to vehicles columns for partial
// updates; the remaining columns already match their field names.
var vehicleJSToSQL = map[string]string{
	"ticketNum": "ticket_num",
	"statusId":  "status_id",
}

const vehicleColumns = `id, ticket_num, status_id, mobile, color, make, damages, notes`

// VehicleRepository handles database operations for vehicles
type VehicleRepository struct {
	db           *pgxpool.Pool
	deletePolicy DeletePolicy
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db, deletePolicy: DeleteHard}
}

func scanVehicle(row pgx.Row) (*models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID,
		&v.TicketNum,
		&v.StatusID,
		&v.Mobile,
		&v.Color,
		&v.Make,
		&v.Damages,
		&v.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new vehicle. Fails with a duplicate error when the mobile
// number is already on an active vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM vehicles WHERE mobile = $1)`,
		vehicle.Mobile).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking vehicle mobile: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate vehicle mobile: %s", vehicle.Mobile))
	}

	query := `
		INSERT INTO vehicles (ticket_num, status_id, mobile, color, make, damages, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + vehicleColumns

	created, err := scanVehicle(r.db.QueryRow(ctx, query,
		vehicle.TicketNum,
		vehicle.StatusID,
		vehicle.Mobile,
		vehicle.Color,
		vehicle.Make,
		vehicle.Damages,
		vehicle.Notes,
	))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Duplicate vehicle mobile: %s", vehicle.Mobile))
		}
		return nil, fmt.Errorf("error creating vehicle: %w", err)
	}

	return created, nil
}

// GetByID retrieves a vehicle by id
func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No vehicle with ID: %d", id))
		}
		return nil, fmt.Errorf("error retrieving vehicle: %w", err)
	}

	return vehicle, nil
}

// List retrieves all vehicles ordered by id.
func (r *VehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`
	return r.queryVehicles(ctx, query)
}

// ListByStatus retrieves all vehicles in a given lifecycle status.
func (r *VehicleRepository) ListByStatus(ctx context.Context, statusID int64) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status_id = $1 ORDER BY id`
	return r.queryVehicles(ctx, query, statusID)
}

// SearchByMobile retrieves vehicles whose mobile number contains the given
// fragment, for podium lookups from a partial number.
func (r *VehicleRepository) SearchByMobile(ctx context.Context, mobile string) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE mobile ILIKE $1 ORDER BY mobile`

	vehicles, err := r.queryVehicles(ctx, query, "%"+mobile+"%")
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No vehicle with mobile: %s", mobile))
	}
	return vehicles, nil
}

func (r *VehicleRepository) queryVehicles(ctx context.Context, query string, args ...interface{}) ([]*models.Vehicle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := []*models.Vehicle{}
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

// Update applies a partial update to a vehicle and returns the updated row.
func (r *VehicleRepository) Update(ctx context.Context, id int64, data *helpers.UpdateData) (*models.Vehicle, error) {
	setCols, values, err := helpers.SQLForPartialUpdate(data, vehicleJSToSQL)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE vehicles SET %s WHERE id = $%d RETURNING %s`,
		setCols, len(values)+1, vehicleColumns)

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, append(values, id)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No vehicle with ID: %d", id))
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError("Duplicate vehicle mobile")
		}
		return nil, fmt.Errorf("error updating vehicle: %w", err)
	}

	return vehicle, nil
}

// Remove deletes a vehicle by id per the repository's delete policy (hard).
func (r *VehicleRepository) Remove(ctx context.Context, id int64) error {
	var cmdQuery string
	switch r.deletePolicy {
	case DeleteSoft:
		cmdQuery = `UPDATE vehicles SET is_deleted = TRUE WHERE id = $1`
	default:
		cmdQuery = `DELETE FROM vehicles WHERE id = $1`
	}

	cmdTag, err := r.db.Exec(ctx, cmdQuery, id)
	if err != nil {
		return fmt.Errorf("error deleting vehicle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("No vehicle with ID: %d", id))
	}

	return nil
}
