package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
	"github.com/parkpilot/parkpilot/internal/pkg/dberrors"
)

// AssignmentRepository manages the user_podiums, user_locations and
// user_regions link tables. Each table is a plain (user_id, other_id)
// primary-key pair, so the three sets of operations share one repository.
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// AssignPodium links a user to a podium
func (r *AssignmentRepository) AssignPodium(ctx context.Context, userID, podiumID int64) (*models.UserPodium, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_podiums WHERE user_id = $1 AND podium_id = $2)`,
		userID, podiumID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking podium assignment: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(
			fmt.Sprintf("User ID: %d is already assigned to podium ID: %d", userID, podiumID))
	}

	query := `INSERT INTO user_podiums (user_id, podium_id) VALUES ($1, $2) RETURNING user_id, podium_id`

	var up models.UserPodium
	if err := r.db.QueryRow(ctx, query, userID, podiumID).Scan(&up.UserID, &up.PodiumID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(
				fmt.Sprintf("User ID: %d is already assigned to podium ID: %d", userID, podiumID))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("No user with ID: %d or podium with ID: %d", userID, podiumID))
		}
		return nil, fmt.Errorf("error assigning podium: %w", err)
	}

	return &up, nil
}

// PodiumsByUser lists a user's podium assignments joined with podium data.
// Soft-deleted podiums are excluded.
func (r *AssignmentRepository) PodiumsByUser(ctx context.Context, userID int64) ([]*models.AssignedPodium, error) {
	query := `
		SELECT p.id, p.name, p.location_id
		FROM user_podiums up
		JOIN podiums p ON p.id = up.podium_id AND p.is_deleted = FALSE
		WHERE up.user_id = $1
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	podiums := []*models.AssignedPodium{}
	for rows.Next() {
		var ap models.AssignedPodium
		if err := rows.Scan(&ap.PodiumID, &ap.PodiumName, &ap.LocationID); err != nil {
			return nil, err
		}
		podiums = append(podiums, &ap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return podiums, nil
}

// UnassignPodium removes a user↔podium link
func (r *AssignmentRepository) UnassignPodium(ctx context.Context, userID, podiumID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM user_podiums WHERE user_id = $1 AND podium_id = $2`, userID, podiumID)
	if err != nil {
		return fmt.Errorf("error removing podium assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(
			fmt.Sprintf("User ID: %d is not assigned to podium ID: %d", userID, podiumID))
	}
	return nil
}

// AssignLocation links a user to a location
func (r *AssignmentRepository) AssignLocation(ctx context.Context, userID, locationID int64) (*models.UserLocation, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_locations WHERE user_id = $1 AND location_id = $2)`,
		userID, locationID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking location assignment: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(
			fmt.Sprintf("User ID: %d is already assigned to location ID: %d", userID, locationID))
	}

	query := `INSERT INTO user_locations (user_id, location_id) VALUES ($1, $2) RETURNING user_id, location_id`

	var ul models.UserLocation
	if err := r.db.QueryRow(ctx, query, userID, locationID).Scan(&ul.UserID, &ul.LocationID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(
				fmt.Sprintf("User ID: %d is already assigned to location ID: %d", userID, locationID))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("No user with ID: %d or location with ID: %d", userID, locationID))
		}
		return nil, fmt.Errorf("error assigning location: %w", err)
	}

	return &ul, nil
}

// LocationsByUser lists the locations a user is assigned to
func (r *AssignmentRepository) LocationsByUser(ctx context.Context, userID int64) ([]*models.Location, error) {
	query := `
		SELECT l.id, l.name, l.region_id, l.address, l.city, l.state, l.zip_code, l.phone
		FROM user_locations ul
		JOIN locations l ON l.id = ul.location_id
		WHERE ul.user_id = $1
		ORDER BY l.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []*models.Location{}
	for rows.Next() {
		var loc models.Location
		err := rows.Scan(&loc.ID, &loc.Name, &loc.RegionID, &loc.Address, &loc.City, &loc.State, &loc.ZipCode, &loc.Phone)
		if err != nil {
			return nil, err
		}
		locations = append(locations, &loc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

// UnassignLocation removes a user↔location link
func (r *AssignmentRepository) UnassignLocation(ctx context.Context, userID, locationID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM user_locations WHERE user_id = $1 AND location_id = $2`, userID, locationID)
	if err != nil {
		return fmt.Errorf("error removing location assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(
			fmt.Sprintf("User ID: %d is not assigned to location ID: %d", userID, locationID))
	}
	return nil
}

// AssignRegion links a user to a region
func (r *AssignmentRepository) AssignRegion(ctx context.Context, userID, regionID int64) (*models.UserRegion, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_regions WHERE user_id = $1 AND region_id = $2)`,
		userID, regionID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("error checking region assignment: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError(
			fmt.Sprintf("User ID: %d is already assigned to region ID: %d", userID, regionID))
	}

	query := `INSERT INTO user_regions (user_id, region_id) VALUES ($1, $2) RETURNING user_id, region_id`

	var ur models.UserRegion
	if err := r.db.QueryRow(ctx, query, userID, regionID).Scan(&ur.UserID, &ur.RegionID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewDuplicateError(
				fmt.Sprintf("User ID: %d is already assigned to region ID: %d", userID, regionID))
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("No user with ID: %d or region with ID: %d", userID, regionID))
		}
		return nil, fmt.Errorf("error assigning region: %w", err)
	}

	return &ur, nil
}

// RegionsByUser lists the regions a user is assigned to
func (r *AssignmentRepository) RegionsByUser(ctx context.Context, userID int64) ([]*models.Region, error) {
	query := `
		SELECT reg.id, reg.name
		FROM user_regions ur
		JOIN regions reg ON reg.id = ur.region_id
		WHERE ur.user_id = $1
		ORDER BY reg.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := []*models.Region{}
	for rows.Next() {
		var reg models.Region
		if err := rows.Scan(&reg.ID, &reg.Name); err != nil {
			return nil, err
		}
		regions = append(regions, &reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regions, nil
}

// UnassignRegion removes a user↔region link
func (r *AssignmentRepository) UnassignRegion(ctx context.Context, userID, regionID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM user_regions WHERE user_id = $1 AND region_id = $2`, userID, regionID)
	if err != nil {
		return fmt.Errorf("error removing region assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(
			fmt.Sprintf("User ID: %d is not assigned to region ID: %d", userID, regionID))
	}
	return nil
}
