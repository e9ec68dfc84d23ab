package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, userID string, proj *Project) error
	Get(ctx context.Context, userID, id string) (*Project, error)
	Update(ctx context.Context, userID string, proj *Project) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]Project, error)
}
