package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/palabraviva/daily-verse-api/internal/database"
	"github.com/palabraviva/daily-verse-api/internal/registration"
	"github.com/palabraviva/daily-verse-api/internal/verse"
)

func setupDatabase(t *testing.T) database.Service {
	t.Helper()
	if testing.Short() {
		t.Skip("requires docker")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("palabra_viva"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("secret"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	svc, err := database.NewFromDSN(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return svc
}

func TestHealth(t *testing.T) {
	svc := setupDatabase(t)
	stats := svc.Health()
	assert.Equal(t, "up", stats["status"])
}

func TestVerseRepositoryRoundTrip(t *testing.T) {
	svc := setupDatabase(t)
	repo := verse.NewRepository(svc)
	ctx := context.Background()

	key := verse.Key{Date: "2024-05-01", Slot: verse.SlotMorning, Language: verse.LangES}

	_, err := repo.GetByKey(ctx, key)
	assert.ErrorIs(t, err, verse.ErrNotFound)

	stored, err := repo.Save(ctx, key, &verse.Verse{
		Reference:   "Juan 3:16",
		Text:        "Porque de tal manera amó Dios al mundo",
		Explanation: "reflexión",
		ImageURL:    "https://pollinations.ai/p/x",
		Language:    verse.LangES,
	})
	require.NoError(t, err)
	assert.False(t, stored.CreatedAt.IsZero(), "created_at is assigned by the store")

	got, err := repo.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, stored.Reference, got.Reference)
	assert.Equal(t, stored.Text, got.Text)
	assert.Equal(t, verse.LangES, got.Language)

	// Same key again: last write wins.
	overwritten, err := repo.Save(ctx, key, &verse.Verse{
		Reference:   "Salmos 23:1",
		Text:        "Jehová es mi pastor",
		Explanation: "otra",
		ImageURL:    "https://pollinations.ai/p/y",
		Language:    verse.LangES,
	})
	require.NoError(t, err)

	got, err = repo.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, overwritten.Reference, got.Reference)
}

func TestRegistrationRepositoryLifecycle(t *testing.T) {
	svc := setupDatabase(t)
	repo := registration.NewRepository(svc)
	ctx := context.Background()

	reg := &registration.Registration{
		Token:     "tok-1",
		Language:  verse.LangES,
		Frequency: registration.FrequencyMorningOnly,
		Timezone:  "America/Santiago",
	}
	require.NoError(t, repo.Upsert(ctx, reg))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "tok-1", all[0].Token)
	assert.False(t, all[0].UpdatedAt.IsZero())

	// Re-registering the same token overwrites, it does not duplicate.
	reg.Frequency = registration.FrequencyAllSlots
	reg.Timezone = "Europe/Madrid"
	require.NoError(t, repo.Upsert(ctx, reg))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, registration.FrequencyAllSlots, all[0].Frequency)
	assert.Equal(t, "Europe/Madrid", all[0].Timezone)

	require.NoError(t, repo.Delete(ctx, "tok-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "tok-1"), registration.ErrNotFound)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
