package stats

import "context"

// ChildRecordRepository loads the flat child-record collections.
type ChildRecordRepository interface {
	Notes(ctx context.Context, userID string) ([]Note, error)
	ProgressItems(ctx context.Context, userID string) ([]ProgressItem, error)
	Stories(ctx context.Context, userID string) ([]Story, error)
	Journeys(ctx context.Context, userID string) ([]Journey, error)
	Designs(ctx context.Context, userID string) ([]Design, error)
}

// StakeholderRepository provides stakeholder counts per project.
type StakeholderRepository interface {
	CountsForProjects(ctx context.Context, projectIDs []string) (map[string]int, error)
	CountForProject(ctx context.Context, projectID string) (int, error)
}
