package sqlite

import (
	"context"
	"fmt"

	"github.com/rowanlane/deckview/internal/domain/stats"
)

// ChildRecordRepository implements repository.ChildRecordRepository for SQLite
type ChildRecordRepository struct {
	db *DB
}

// NewChildRecordRepository creates a new ChildRecordRepository
func NewChildRecordRepository(db *DB) *ChildRecordRepository {
	return &ChildRecordRepository{db: db}
}

// Notes returns every note for a user
func (r *ChildRecordRepository) Notes(ctx context.Context, userID string) ([]stats.Note, error) {
	query := `
		SELECT id, project_id, body, created_at
		FROM notes
		WHERE user_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []stats.Note
	for rows.Next() {
		var n stats.Note
		if err := rows.Scan(&n.ID, &n.ProjectID, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

// ProgressItems returns every progress item for a user
func (r *ChildRecordRepository) ProgressItems(ctx context.Context, userID string) ([]stats.ProgressItem, error) {
	query := `
		SELECT id, project_id, title, completed, created_at
		FROM progress_items
		WHERE user_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress items: %w", err)
	}
	defer rows.Close()

	var items []stats.ProgressItem
	for rows.Next() {
		var item stats.ProgressItem
		if err := rows.Scan(&item.ID, &item.ProjectID, &item.Title, &item.Completed, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress item rows: %w", err)
	}

	return items, nil
}

// Stories returns every story for a user
func (r *ChildRecordRepository) Stories(ctx context.Context, userID string) ([]stats.Story, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, created_at FROM stories WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer rows.Close()

	var stories []stats.Story
	for rows.Next() {
		var s stats.Story
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Title, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan story: %w", err)
		}
		stories = append(stories, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating story rows: %w", err)
	}

	return stories, nil
}

// Journeys returns every journey for a user
func (r *ChildRecordRepository) Journeys(ctx context.Context, userID string) ([]stats.Journey, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, created_at FROM journeys WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list journeys: %w", err)
	}
	defer rows.Close()

	var journeys []stats.Journey
	for rows.Next() {
		var j stats.Journey
		if err := rows.Scan(&j.ID, &j.ProjectID, &j.Title, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		journeys = append(journeys, j)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journey rows: %w", err)
	}

	return journeys, nil
}

// Designs returns every design for a user
func (r *ChildRecordRepository) Designs(ctx context.Context, userID string) ([]stats.Design, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, created_at FROM designs WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer rows.Close()

	var designs []stats.Design
	for rows.Next() {
		var d stats.Design
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.Title, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan design: %w", err)
		}
		designs = append(designs, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating design rows: %w", err)
	}

	return designs, nil
}
