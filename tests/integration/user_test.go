package integration

import (
	"context"
	"testing"
	"time"

	"github.com/dimitrije/handlepick/internal/models"
	"github.com/dimitrije/handlepick/internal/services"
	"github.com/dimitrije/handlepick/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserService_Integration_Upsert_CreateNew(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user, err := svc.Upsert(ctx, "jane@example.com", models.Profile{Name: "Jane"})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Jane", *user.Name)
	assert.Nil(t, user.Phone)
	assert.Nil(t, user.YoutubeHandle)
	assert.False(t, user.Picked)
	assert.Nil(t, user.PickedAt)
}

func TestUserService_Integration_Upsert_UpdateKeepsPickedState(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	pickedAt := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)
	existing := fixtures.CreateUser(t,
		testutil.WithEmail("jane@example.com"),
		testutil.WithHandle("@jane"),
		testutil.WithPicked(pickedAt),
	)

	user, err := svc.Upsert(ctx, "jane@example.com", models.Profile{Name: "Jane Doe", Phone: strPtr("555-0100")})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "Jane Doe", *user.Name)
	assert.Equal(t, "555-0100", *user.Phone)
	require.NotNil(t, user.YoutubeHandle)
	assert.Equal(t, "@jane", *user.YoutubeHandle)
	assert.True(t, user.Picked)
	require.NotNil(t, user.PickedAt)
	assert.True(t, pickedAt.Equal(*user.PickedAt))
	assert.True(t, user.UpdatedAt.After(existing.UpdatedAt))
}

func TestUserService_Integration_Upsert_ReplacesHandle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "jane@example.com", models.Profile{Name: "Jane", YoutubeHandle: strPtr("@old")})
	require.NoError(t, err)

	user, err := svc.Upsert(ctx, "jane@example.com", models.Profile{Name: "Jane", YoutubeHandle: strPtr("@new")})

	require.NoError(t, err)
	assert.Equal(t, "@new", *user.YoutubeHandle)

	var count int
	require.NoError(t, tdb.DB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUserService_Integration_Upsert_ClearsHandle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	pickSvc := services.NewPickService(tdb.DB)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "jane@example.com", models.Profile{Name: "Jane", Phone: strPtr("555"), YoutubeHandle: strPtr("@jane")})
	require.NoError(t, err)

	user, err := svc.Upsert(ctx, "jane@example.com", models.Profile{Name: "Jane", ClearYoutubeHandle: true})

	require.NoError(t, err)
	assert.Nil(t, user.YoutubeHandle)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "555", *user.Phone)

	notPicked, picked, err := pickSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notPicked)
	assert.Empty(t, picked)
}

func TestUserService_Integration_GetByEmail_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)

	_, err := svc.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDatabase_Integration_PickedRequiresTimestamp(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)

	_, err := tdb.DB.Pool.Exec(ctx, `UPDATE users SET picked = true WHERE id = $1`, user.ID)
	assert.Error(t, err)

	// Migrations are idempotent.
	assert.NoError(t, tdb.DB.Migrate(ctx))
}
