package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rowanlane/deckview/internal/auth"
	"github.com/rowanlane/deckview/internal/repository"
)

func TestCredentialRepository_CreateAndLookup(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	user := &auth.User{ID: "u1", Email: "ana@example.com"}
	require.NoError(t, repo.Create(ctx, user, "hash1"))

	found, err := repo.Lookup(ctx, "ana@example.com", "hash1")
	require.NoError(t, err)
	require.Equal(t, "u1", found.ID)
	require.Equal(t, "ana@example.com", found.Email)
}

func TestCredentialRepository_LookupWrongSecret(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &auth.User{ID: "u1", Email: "ana@example.com"}, "hash1"))

	_, err := repo.Lookup(ctx, "ana@example.com", "wrong")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCredentialRepository_Tokens(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCredentialRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &auth.User{ID: "u1", Email: "ana@example.com"}, "hash1"))
	require.NoError(t, repo.StoreToken(ctx, "u1", "tokenhash"))

	found, err := repo.LookupByToken(ctx, "tokenhash")
	require.NoError(t, err)
	require.Equal(t, "u1", found.ID)

	_, err = repo.LookupByToken(ctx, "unknown")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
