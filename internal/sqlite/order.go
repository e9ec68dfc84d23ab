package sqlite

import (
	"context"
	"fmt"

	"github.com/rowanlane/deckview/internal/repository"
)

// OrderRepository implements repository.OrderRepository for SQLite
type OrderRepository struct {
	db *DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetPreference returns the stored project ordering for a user. A user with
// no stored preference gets repository.ErrNotFound.
func (r *OrderRepository) GetPreference(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT project_id
		FROM order_preferences
		WHERE user_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order preference: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan order entry: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	if len(ids) == 0 {
		return nil, repository.ErrNotFound
	}

	return ids, nil
}

// InitializePreference seeds a preference for a user who has none. It shares
// the full-replacement write with PersistOrder.
func (r *OrderRepository) InitializePreference(ctx context.Context, userID string, projectIDs []string) error {
	return r.replaceOrder(ctx, userID, projectIDs, "initialize order preference")
}

// PersistOrder stores the complete ordering, replacing whatever was there.
// Replaying the same order is a no-op on the stored state, which makes the
// call idempotent.
func (r *OrderRepository) PersistOrder(ctx context.Context, userID string, projectIDs []string) error {
	return r.replaceOrder(ctx, userID, projectIDs, "persist order")
}

func (r *OrderRepository) replaceOrder(ctx context.Context, userID string, projectIDs []string, op string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_preferences WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	for position, projectID := range projectIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO order_preferences (user_id, project_id, position) VALUES (?, ?, ?)`,
			userID, projectID, position,
		)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RemoveEntry drops one project from the stored preference and closes the
// position gap it leaves.
func (r *OrderRepository) RemoveEntry(ctx context.Context, userID, projectID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM order_preferences WHERE user_id = ? AND project_id = ?`,
		userID, projectID,
	); err != nil {
		return fmt.Errorf("failed to remove order entry: %w", err)
	}

	// Renumber the remaining entries so positions stay dense.
	rows, err := tx.QueryContext(ctx,
		`SELECT project_id FROM order_preferences WHERE user_id = ? ORDER BY position ASC`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to reload order entries: %w", err)
	}

	var remaining []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan order entry: %w", err)
		}
		remaining = append(remaining, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating order rows: %w", err)
	}
	rows.Close()

	for position, id := range remaining {
		if _, err := tx.ExecContext(ctx,
			`UPDATE order_preferences SET position = ? WHERE user_id = ? AND project_id = ?`,
			position, userID, id,
		); err != nil {
			return fmt.Errorf("failed to renumber order entries: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
