package repository

import (
	"context"

	"github.com/rowanlane/deckview/internal/auth"
	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/domain/stats"
)

// ProjectRepository manages project persistence
type ProjectRepository interface {
	Create(ctx context.Context, userID string, proj *project.Project) error
	Get(ctx context.Context, userID, id string) (*project.Project, error)
	Update(ctx context.Context, userID string, proj *project.Project) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]project.Project, error)
}

// OrderRepository manages per-user project ordering preferences.
// PersistOrder has full-replacement semantics: the stored preference after
// the call is exactly the given sequence, regardless of what was there before.
type OrderRepository interface {
	GetPreference(ctx context.Context, userID string) ([]string, error)
	InitializePreference(ctx context.Context, userID string, projectIDs []string) error
	PersistOrder(ctx context.Context, userID string, projectIDs []string) error
	RemoveEntry(ctx context.Context, userID, projectID string) error
}

// ChildRecordRepository loads the flat child-record collections for a user.
type ChildRecordRepository interface {
	Notes(ctx context.Context, userID string) ([]stats.Note, error)
	ProgressItems(ctx context.Context, userID string) ([]stats.ProgressItem, error)
	Stories(ctx context.Context, userID string) ([]stats.Story, error)
	Journeys(ctx context.Context, userID string) ([]stats.Journey, error)
	Designs(ctx context.Context, userID string) ([]stats.Design, error)
}

// StakeholderRepository provides stakeholder counts per project.
type StakeholderRepository interface {
	CountsForProjects(ctx context.Context, projectIDs []string) (map[string]int, error)
	CountForProject(ctx context.Context, projectID string) (int, error)
}

// CredentialRepository manages local credential persistence for the
// fallback auth provider.
type CredentialRepository interface {
	Create(ctx context.Context, user *auth.User, secretHash string) error
	Lookup(ctx context.Context, email, secretHash string) (*auth.User, error)
	LookupByToken(ctx context.Context, tokenHash string) (*auth.User, error)
	StoreToken(ctx context.Context, userID, tokenHash string) error
}
