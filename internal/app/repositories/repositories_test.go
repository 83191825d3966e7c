package repositories_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkpilot/parkpilot/internal/app/migrations"
	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/repositories"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

// Repository behavior lives in SQL, so these tests run against a real
// database. Point TEST_DATABASE_URL at a disposable postgres database to run
// them; they are skipped otherwise.
func testRepos(t *testing.T) *repositories.Repositories {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))

	_, err = pool.Exec(ctx, `TRUNCATE surveys, transactions, user_podiums, user_locations,
		user_regions, users, vehicles, podiums, locations, regions, roles, statuses
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return repositories.NewRepositories(pool)
}

func createSite(t *testing.T, r *repositories.Repositories) *models.Location {
	t.Helper()
	ctx := context.Background()

	region, err := r.Region.Create(ctx, &models.Region{Name: "West"})
	require.NoError(t, err)

	location, err := r.Location.Create(ctx, &models.Location{
		Name:     "Grand Hotel",
		RegionID: region.ID,
		Address:  "100 Main St",
		City:     "Denver",
		State:    "CO",
		ZipCode:  "80202",
		Phone:    "555-0100",
	})
	require.NoError(t, err)
	return location
}

func TestPodiumSoftDeleteVisibility(t *testing.T) {
	r := testRepos(t)
	ctx := context.Background()
	site := createSite(t, r)

	podium, err := r.Podium.Create(ctx, &models.Podium{Name: "North Stand", LocationID: site.ID})
	require.NoError(t, err)

	require.NoError(t, r.Podium.Remove(ctx, podium.ID))

	// Gone from listings and keyed active reads
	active, err := r.Podium.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, active)

	_, err = r.Podium.GetByID(ctx, podium.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	// Still reachable by raw id
	kept, err := r.Podium.GetByIDAny(ctx, podium.ID)
	assert.NoError(t, err)
	assert.True(t, kept.IsDeleted)
	assert.Equal(t, "North Stand", kept.Name)

	// Removing twice reports not found
	err = r.Podium.Remove(ctx, podium.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestPodiumDuplicateCreateLeavesStoreUnchanged(t *testing.T) {
	r := testRepos(t)
	ctx := context.Background()
	site := createSite(t, r)

	_, err := r.Podium.Create(ctx, &models.Podium{Name: "North Stand", LocationID: site.ID})
	require.NoError(t, err)

	_, err = r.Podium.Create(ctx, &models.Podium{Name: "North Stand", LocationID: site.ID})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	podiums, err := r.Podium.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, podiums, 1)
}

func TestPodiumNameReusableAfterSoftDelete(t *testing.T) {
	r := testRepos(t)
	ctx := context.Background()
	site := createSite(t, r)

	first, err := r.Podium.Create(ctx, &models.Podium{Name: "North Stand", LocationID: site.ID})
	require.NoError(t, err)
	require.NoError(t, r.Podium.Remove(ctx, first.ID))

	second, err := r.Podium.Create(ctx, &models.Podium{Name: "North Stand", LocationID: site.ID})
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRoleSoftDeleteVisibility(t *testing.T) {
	r := testRepos(t)
	ctx := context.Background()

	role, err := r.Role.Create(ctx, &models.Role{Role: "greeter"})
	require.NoError(t, err)

	require.NoError(t, r.Role.Remove(ctx, role.ID))

	active, err := r.Role.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, active)

	_, err = r.Role.GetByID(ctx, role.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	kept, err := r.Role.GetByIDAny(ctx, role.ID)
	assert.NoError(t, err)
	assert.True(t, kept.IsDeleted)
	assert.Equal(t, "greeter", kept.Role)
}

func TestRoleNameReusableAfterSoftDelete(t *testing.T) {
	r := testRepos(t)
	ctx := context.Background()

	first, err := r.Role.Create(ctx, &models.Role{Role: "greeter"})
	require.NoError(t, err)

	// Active duplicates are rejected
	_, err = r.Role.Create(ctx, &models.Role{Role: "greeter"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// A soft-deleted role frees its name
	require.NoError(t, r.Role.Remove(ctx, first.ID))

	second, err := r.Role.Create(ctx, &models.Role{Role: "greeter"})
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
