package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rowanlane/deckview/internal/auth"
	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/domain/stats"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, userID string, proj *project.Project) error {
	args := m.Called(ctx, userID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, userID, id string) (*project.Project, error) {
	args := m.Called(ctx, userID, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, userID string, proj *project.Project) error {
	args := m.Called(ctx, userID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context, userID string) ([]project.Project, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// OrderRepository is a mock for repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) GetPreference(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) InitializePreference(ctx context.Context, userID string, projectIDs []string) error {
	args := m.Called(ctx, userID, projectIDs)
	return args.Error(0)
}

func (m *OrderRepository) PersistOrder(ctx context.Context, userID string, projectIDs []string) error {
	args := m.Called(ctx, userID, projectIDs)
	return args.Error(0)
}

func (m *OrderRepository) RemoveEntry(ctx context.Context, userID, projectID string) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

// ChildRecordRepository is a mock for repository.ChildRecordRepository.
type ChildRecordRepository struct {
	mock.Mock
}

func (m *ChildRecordRepository) Notes(ctx context.Context, userID string) ([]stats.Note, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]stats.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ChildRecordRepository) ProgressItems(ctx context.Context, userID string) ([]stats.ProgressItem, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]stats.ProgressItem); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ChildRecordRepository) Stories(ctx context.Context, userID string) ([]stats.Story, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]stats.Story); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ChildRecordRepository) Journeys(ctx context.Context, userID string) ([]stats.Journey, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]stats.Journey); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ChildRecordRepository) Designs(ctx context.Context, userID string) ([]stats.Design, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]stats.Design); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// StakeholderRepository is a mock for repository.StakeholderRepository.
type StakeholderRepository struct {
	mock.Mock
}

func (m *StakeholderRepository) CountsForProjects(ctx context.Context, projectIDs []string) (map[string]int, error) {
	args := m.Called(ctx, projectIDs)
	if counts, ok := args.Get(0).(map[string]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StakeholderRepository) CountForProject(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

// CredentialRepository is a mock for repository.CredentialRepository.
type CredentialRepository struct {
	mock.Mock
}

func (m *CredentialRepository) Create(ctx context.Context, user *auth.User, secretHash string) error {
	args := m.Called(ctx, user, secretHash)
	return args.Error(0)
}

func (m *CredentialRepository) Lookup(ctx context.Context, email, secretHash string) (*auth.User, error) {
	args := m.Called(ctx, email, secretHash)
	if user, ok := args.Get(0).(*auth.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CredentialRepository) LookupByToken(ctx context.Context, tokenHash string) (*auth.User, error) {
	args := m.Called(ctx, tokenHash)
	if user, ok := args.Get(0).(*auth.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CredentialRepository) StoreToken(ctx context.Context, userID, tokenHash string) error {
	args := m.Called(ctx, userID, tokenHash)
	return args.Error(0)
}
