package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/repository"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, userID string, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, user_id, name, overview, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		userID,
		proj.Name,
		proj.Overview,
		proj.CreatedAt,
		proj.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, userID, id string) (*project.Project, error) {
	query := `
		SELECT id, user_id, name, overview, created_at, updated_at
		FROM projects
		WHERE id = ? AND user_id = ?
	`

	var proj project.Project
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&proj.ID,
		&proj.UserID,
		&proj.Name,
		&proj.Overview,
		&proj.CreatedAt,
		&proj.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &proj, nil
}

// Update replaces a project's mutable fields
func (r *ProjectRepository) Update(ctx context.Context, userID string, proj *project.Project) error {
	query := `
		UPDATE projects
		SET name = ?, overview = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, proj.Name, proj.Overview, proj.UpdatedAt, proj.ID, userID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a project; child records cascade
func (r *ProjectRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns all projects for a user in creation order
func (r *ProjectRepository) List(ctx context.Context, userID string) ([]project.Project, error) {
	query := `
		SELECT id, user_id, name, overview, created_at, updated_at
		FROM projects
		WHERE user_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		err := rows.Scan(
			&proj.ID,
			&proj.UserID,
			&proj.Name,
			&proj.Overview,
			&proj.CreatedAt,
			&proj.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}
