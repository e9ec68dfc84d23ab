package order

import "context"

// Repository persists per-user ordering preferences.
type Repository interface {
	GetPreference(ctx context.Context, userID string) ([]string, error)
	InitializePreference(ctx context.Context, userID string, projectIDs []string) error
	PersistOrder(ctx context.Context, userID string, projectIDs []string) error
	RemoveEntry(ctx context.Context, userID, projectID string) error
}
