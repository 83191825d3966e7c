package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

// Role and status names keyed by their fixed ids. The application relies on
// these ids, so they are inserted with explicit keys rather than serials.
var defaultRoles = map[int64]string{
	models.RoleValet:      "valet",
	models.RoleSupervisor: "supervisor",
	models.RoleManager:    "manager",
	models.RoleAdmin:      "admin",
}

var defaultStatuses = map[int64]string{
	models.StatusCheckedIn:  "checked-in",
	models.StatusStaged:     "staged",
	models.StatusParked:     "parked",
	models.StatusRequested:  "requested",
	models.StatusRetrieved:  "retrieved",
	models.StatusCheckedOut: "checked-out",
}

// CreateDefaultData inserts the fixed roles and statuses plus a bootstrap
// admin account when the users table is empty. Safe to run on every start.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminPassword string, lgr zerolog.Logger) error {
	var finalErr error

	for id, role := range defaultRoles {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO roles (id, role) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, id, role)
		if err != nil {
			lgr.Error().Err(err).Str("role", role).Msg("Error seeding role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for id, description := range defaultStatuses {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO statuses (id, description) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, id, description)
		if err != nil {
			lgr.Error().Err(err).Str("status", description).Msg("Error seeding status")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Keep the serial sequences ahead of the fixed ids.
	if _, err := dbPool.Exec(ctx,
		`SELECT setval('roles_id_seq', (SELECT MAX(id) FROM roles))`); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if _, err := dbPool.Exec(ctx,
		`SELECT setval('statuses_id_seq', (SELECT MAX(id) FROM statuses))`); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if err := createBootstrapAdmin(ctx, dbPool, adminPassword, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func createBootstrapAdmin(ctx context.Context, dbPool *pgxpool.Pool, password string, lgr zerolog.Logger) error {
	var userCount int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	if password == "" {
		lgr.Warn().Msg("No bootstrap admin password configured, skipping admin creation")
		return apperrors.NewBadRequestError("bootstrap admin password not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = dbPool.Exec(ctx,
		`INSERT INTO users (username, password, first_name, last_name, role_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		"admin", string(hash), "System", "Admin", models.RoleAdmin)
	if err != nil {
		return err
	}

	lgr.Info().Msg("Bootstrap admin account created")
	return nil
}
