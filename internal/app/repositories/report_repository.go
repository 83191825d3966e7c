package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

// reportJoin is the flat five-way join behind podium activity reports.
// Every column is aliased so the scan order stays readable.
const reportJoin = `
	SELECT
		t.id, t.user_id, t.vehicle_id, t.podium_id, t.location_id, t.status_id,
		t.transaction_time, t.updated_at,
		v.id, v.ticket_num, v.status_id, v.mobile, v.color, v.make, v.damages, v.notes,
		u.id, u.username, u.first_name, u.last_name, u.email, u.phone,
		u.total_parked, u.role_id, u.podium_id,
		l.id, l.name, l.region_id, l.address, l.city, l.state, l.zip_code, l.phone,
		p.id, p.name, p.location_id
	FROM transactions t
	JOIN vehicles v ON v.id = t.vehicle_id
	JOIN users u ON u.id = t.user_id
	JOIN locations l ON l.id = t.location_id
	JOIN podiums p ON p.id = t.podium_id`

// ReportRepository serves the read-only reporting joins: podium activity
// feeds, single-transaction detail and the dashboard rollup.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

func scanPodiumActivity(row pgx.Row, pa *models.PodiumActivity) error {
	return row.Scan(
		&pa.TransactionID, &pa.TransactionUserID, &pa.TransactionVehicleID,
		&pa.TransactionPodiumID, &pa.TransactionLocationID, &pa.TransactionStatusID,
		&pa.TransactionTime, &pa.TransactionUpdatedAt,
		&pa.VehicleID, &pa.VehicleTicketNum, &pa.VehicleStatusID, &pa.VehicleMobile,
		&pa.VehicleColor, &pa.VehicleMake, &pa.VehicleDamages, &pa.VehicleNotes,
		&pa.UserID, &pa.UserUsername, &pa.UserFirstName, &pa.UserLastName,
		&pa.UserEmail, &pa.UserPhone, &pa.UserTotalParked, &pa.UserRoleID, &pa.UserPodiumID,
		&pa.LocationID, &pa.LocationName, &pa.LocationRegionID, &pa.LocationAddress,
		&pa.LocationCity, &pa.LocationState, &pa.LocationZipCode, &pa.LocationPhone,
		&pa.PodiumID, &pa.PodiumName, &pa.PodiumLocationID,
	)
}

// PodiumActivity retrieves the full activity feed for one podium, oldest
// first. An empty feed is a not-found condition: the caller is asking about
// a specific podium's day.
func (r *ReportRepository) PodiumActivity(ctx context.Context, podiumID int64) ([]*models.PodiumActivity, error) {
	query := reportJoin + `
	WHERE t.podium_id = $1
	ORDER BY t.transaction_time ASC, t.id ASC`

	rows, err := r.db.Query(ctx, query, podiumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := []*models.PodiumActivity{}
	for rows.Next() {
		var pa models.PodiumActivity
		if err := scanPodiumActivity(rows, &pa); err != nil {
			return nil, err
		}
		activity = append(activity, &pa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(activity) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("No activity for podium ID: %d", podiumID))
	}

	return activity, nil
}

// TransactionDetail retrieves one transaction's full joined row including
// the resolved status label.
func (r *ReportRepository) TransactionDetail(ctx context.Context, transactionID int64) (*models.TransactionDetail, error) {
	query := `
	SELECT
		t.id, t.user_id, t.vehicle_id, t.podium_id, t.location_id, t.status_id,
		t.transaction_time, t.updated_at,
		v.id, v.ticket_num, v.status_id, v.mobile, v.color, v.make, v.damages, v.notes,
		u.id, u.username, u.first_name, u.last_name, u.email, u.phone,
		u.total_parked, u.role_id, u.podium_id,
		l.id, l.name, l.region_id, l.address, l.city, l.state, l.zip_code, l.phone,
		p.id, p.name, p.location_id,
		s.id, s.description
	FROM transactions t
	JOIN vehicles v ON v.id = t.vehicle_id
	JOIN users u ON u.id = t.user_id
	JOIN locations l ON l.id = t.location_id
	JOIN podiums p ON p.id = t.podium_id
	JOIN statuses s ON s.id = t.status_id
	WHERE t.id = $1`

	var td models.TransactionDetail
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&td.TransactionID, &td.TransactionUserID, &td.TransactionVehicleID,
		&td.TransactionPodiumID, &td.TransactionLocationID, &td.TransactionStatusID,
		&td.TransactionTime, &td.TransactionUpdatedAt,
		&td.VehicleID, &td.VehicleTicketNum, &td.VehicleStatusID, &td.VehicleMobile,
		&td.VehicleColor, &td.VehicleMake, &td.VehicleDamages, &td.VehicleNotes,
		&td.UserID, &td.UserUsername, &td.UserFirstName, &td.UserLastName,
		&td.UserEmail, &td.UserPhone, &td.UserTotalParked, &td.UserRoleID, &td.UserPodiumID,
		&td.LocationID, &td.LocationName, &td.LocationRegionID, &td.LocationAddress,
		&td.LocationCity, &td.LocationState, &td.LocationZipCode, &td.LocationPhone,
		&td.PodiumID, &td.PodiumName, &td.PodiumLocationID,
		&td.StatusID, &td.StatusDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No transaction with ID: %d", transactionID))
		}
		return nil, fmt.Errorf("error retrieving transaction detail: %w", err)
	}

	return &td, nil
}

// DashboardStats rolls up today's transaction counts per status across a
// set of podiums. The day boundary is evaluated in the given IANA timezone
// so "today" follows the site, not the server.
func (r *ReportRepository) DashboardStats(ctx context.Context, podiumIDs []int64, timezone string) (*models.DashboardStats, error) {
	query := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE t.status_id = $3),
		COUNT(*) FILTER (WHERE t.status_id = $4),
		COUNT(*) FILTER (WHERE t.status_id = $5),
		COUNT(*) FILTER (WHERE t.status_id = $6),
		COUNT(*) FILTER (WHERE t.status_id = $7),
		COUNT(*) FILTER (WHERE t.status_id = $8)
	FROM transactions t
	WHERE t.podium_id = ANY($1::bigint[])
	  AND (t.transaction_time AT TIME ZONE $2)::date = (CURRENT_TIMESTAMP AT TIME ZONE $2)::date`

	var stats models.DashboardStats
	err := r.db.QueryRow(ctx, query, podiumIDs, timezone,
		models.StatusCheckedIn, models.StatusStaged, models.StatusParked,
		models.StatusRequested, models.StatusRetrieved, models.StatusCheckedOut,
	).Scan(
		&stats.TotalCount, &stats.CheckedInCount, &stats.StagedCount,
		&stats.ParkedCount, &stats.RequestedCount, &stats.RetrievedCount,
		&stats.CheckedOutCount,
	)
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	return &stats, nil
}
