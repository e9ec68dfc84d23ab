package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanlane/deckview/internal/repository"
)

func TestOrderRepository_GetPreferenceEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	_, err := repo.GetPreference(ctx, "u1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderRepository_InitializeAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	err := repo.InitializePreference(ctx, "u1", []string{"p2", "p1", "p3"})
	require.NoError(t, err)

	ids, err := repo.GetPreference(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"p2", "p1", "p3"}, ids)
}

func TestOrderRepository_PersistReplacesWholeOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.InitializePreference(ctx, "u1", []string{"p1", "p2", "p3"}))
	require.NoError(t, repo.PersistOrder(ctx, "u1", []string{"p3", "p1", "p2"}))

	ids, err := repo.GetPreference(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"p3", "p1", "p2"}, ids)
}

func TestOrderRepository_PersistIdempotent(t *testing.T) {
	db := NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := []string{"p2", "p3", "p1"}
	require.NoError(t, repo.PersistOrder(ctx, "u1", order))
	require.NoError(t, repo.PersistOrder(ctx, "u1", order))

	ids, err := repo.GetPreference(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, order, ids)
}

func TestOrderRepository_IsolatedByUser(t *testing.T) {
	db := NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.PersistOrder(ctx, "u1", []string{"p1", "p2"}))
	require.NoError(t, repo.PersistOrder(ctx, "u2", []string{"p2", "p1"}))

	ids, err := repo.GetPreference(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2"}, ids)

	ids, err = repo.GetPreference(ctx, "u2")
	require.NoError(t, err)
	require.Equal(t, []string{"p2", "p1"}, ids)
}

func TestOrderRepository_RemoveEntryRenumbers(t *testing.T) {
	db := NewTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.PersistOrder(ctx, "u1", []string{"p1", "p2", "p3"}))
	require.NoError(t, repo.RemoveEntry(ctx, "u1", "p2"))

	ids, err := repo.GetPreference(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p3"}, ids)

	// Removing an ID that is not present is a no-op
	require.NoError(t, repo.RemoveEntry(ctx, "u1", "missing"))
	ids, err = repo.GetPreference(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p3"}, ids)
}
