package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// StakeholderRepository implements repository.StakeholderRepository for SQLite
type StakeholderRepository struct {
	db *DB
}

// NewStakeholderRepository creates a new StakeholderRepository
func NewStakeholderRepository(db *DB) *StakeholderRepository {
	return &StakeholderRepository{db: db}
}

// CountsForProjects returns stakeholder counts for all given projects in one
// query. Projects with no stakeholders are absent from the result.
func (r *StakeholderRepository) CountsForProjects(ctx context.Context, projectIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(projectIDs))
	if len(projectIDs) == 0 {
		return counts, nil
	}

	placeholders := strings.Repeat("?,", len(projectIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf(`
		SELECT project_id, COUNT(*)
		FROM stakeholders
		WHERE project_id IN (%s)
		GROUP BY project_id
	`, placeholders)

	args := make([]any, len(projectIDs))
	for i, id := range projectIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count stakeholders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID string
		var count int
		if err := rows.Scan(&projectID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stakeholder count: %w", err)
		}
		counts[projectID] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stakeholder rows: %w", err)
	}

	return counts, nil
}

// CountForProject returns the stakeholder count for one project.
func (r *StakeholderRepository) CountForProject(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stakeholders WHERE project_id = ?`,
		projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stakeholders for project: %w", err)
	}
	return count, nil
}
