package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-manager/app/domain"
	"session-manager/app/driver/postgres"
)

// TestDatabaseConnectionIntegration verifies the test database is reachable
// and the profiles schema is migrated.
func TestDatabaseConnectionIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, WaitForDatabase(ctx), "database should become available")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx))

	var one int
	require.NoError(t, pool.QueryRow(ctx, "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)

	var exists bool
	err = pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'profiles')").
		Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists, "profiles table should exist, run migrations first")
}

// TestProfileRepositoryIntegration exercises the repository against a real
// PostgreSQL instance.
func TestProfileRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := TestDatabaseConnection()
	require.NoError(t, err)
	defer pool.Close()

	testLogger, err := TestLogger()
	require.NoError(t, err)

	repo := postgres.NewProfileRepository(pool, testLogger)

	t.Cleanup(func() {
		if err := CleanupTestData(context.Background()); err != nil {
			t.Logf("cleanup failed: %v", err)
		}
	})

	t.Run("create and fetch profile", func(t *testing.T) {
		identityID := uuid.New()
		email := fmt.Sprintf("profile-%s@example.com", identityID.String()[:8])

		profile, err := domain.NewProfile(identityID, email, "Integration User")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, profile))

		fetched, err := repo.GetByID(ctx, identityID)
		require.NoError(t, err)

		assert.Equal(t, identityID, fetched.ID)
		assert.Equal(t, email, fetched.Email)
		assert.Equal(t, "Integration User", fetched.DisplayName)
		assert.Equal(t, "USD", fetched.Currency)
		assert.Equal(t, domain.ThemeAuto, fetched.Theme)
		assert.True(t, fetched.Notifications.Email)
		assert.False(t, fetched.Notifications.Push)
		assert.False(t, fetched.CreatedAt.IsZero())
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		identityID := uuid.New()
		email := fmt.Sprintf("dup-%s@example.com", identityID.String()[:8])

		profile, err := domain.NewProfile(identityID, email, "Dup User")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, profile))
		assert.Error(t, repo.Create(ctx, profile), "primary key violation expected")
	})

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		identityID := uuid.New()
		email := fmt.Sprintf("update-%s@example.com", identityID.String()[:8])

		profile, err := domain.NewProfile(identityID, email, "Before")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, profile))

		displayName := "After"
		theme := domain.ThemeDark
		updated, err := repo.Update(ctx, identityID, domain.ProfileUpdate{
			DisplayName: &displayName,
			Theme:       &theme,
		})
		require.NoError(t, err)

		assert.Equal(t, "After", updated.DisplayName)
		assert.Equal(t, domain.ThemeDark, updated.Theme)
		assert.Equal(t, email, updated.Email)
		assert.Equal(t, "USD", updated.Currency)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
	})

	t.Run("missing profile returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)

		displayName := "nobody"
		_, err = repo.Update(ctx, uuid.New(), domain.ProfileUpdate{DisplayName: &displayName})
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("theme constraint rejects unknown values", func(t *testing.T) {
		identityID := uuid.New()
		email := fmt.Sprintf("theme-%s@example.com", identityID.String()[:8])

		profile, err := domain.NewProfile(identityID, email, "Theme User")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, profile))

		_, err = pool.Exec(ctx, "UPDATE profiles SET theme = 'sepia' WHERE id = $1", identityID)
		assert.Error(t, err, "check constraint should reject unsupported theme")
	})
}
