package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/repository"
)

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{
		ID:        "p1",
		UserID:    "u1",
		Name:      "Website Redesign",
		Overview:  "Refresh the marketing site",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := repo.Create(ctx, "u1", proj)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Equal(t, proj.ID, retrieved.ID)
	require.Equal(t, proj.Name, retrieved.Name)
	require.Equal(t, proj.Overview, retrieved.Overview)
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1", "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_GetIsolatedByUser(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, "u1", &project.Project{
		ID: "p1", UserID: "u1", Name: "Mine",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = repo.Get(ctx, "u2", "p1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := &project.Project{
		ID: "p1", UserID: "u1", Name: "Before",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, "u1", proj))

	proj.Name = "After"
	proj.Overview = "Updated overview"
	proj.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(ctx, "u1", proj))

	retrieved, err := repo.Get(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Equal(t, "After", retrieved.Name)
	require.Equal(t, "Updated overview", retrieved.Overview)
}

func TestProjectRepository_UpdateNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	err := repo.Update(ctx, "u1", &project.Project{
		ID: "missing", UserID: "u1", Name: "Nope", UpdatedAt: time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "u1", &project.Project{
		ID: "p1", UserID: "u1", Name: "Short-lived",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))

	require.NoError(t, repo.Delete(ctx, "u1", "p1"))

	_, err := repo.Get(ctx, "u1", "p1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, "u1", "p1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ListOrderedByCreation(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repo.Create(ctx, "u1", &project.Project{
			ID: id, UserID: "u1", Name: "Project " + id,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			UpdatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	// Another user's project must not appear
	require.NoError(t, repo.Create(ctx, "u2", &project.Project{
		ID: "other", UserID: "u2", Name: "Theirs",
		CreatedAt: base, UpdatedAt: base,
	}))

	projects, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "p1", projects[0].ID)
	require.Equal(t, "p2", projects[1].ID)
	require.Equal(t, "p3", projects[2].ID)
}
