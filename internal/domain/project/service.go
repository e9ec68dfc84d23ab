package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rowanlane/deckview/internal/repoerr"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name     string
	Overview string
}

// Create creates a new project.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	proj := &Project{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Overview:  req.Overview,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, userID, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return proj, nil
}

// UpdateRequest defines project update inputs. Nil fields are left unchanged.
type UpdateRequest struct {
	ID       string
	Name     *string
	Overview *string
}

// Update modifies an existing project.
func (s *Service) Update(ctx context.Context, userID string, req UpdateRequest) (*Project, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.repo.Get(ctx, userID, req.ID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Overview != nil {
		updated.Overview = *req.Overview
	}
	updated.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, userID, &updated); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return &updated, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, userID, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// List returns the authoritative project set for a user, in store order.
func (s *Service) List(ctx context.Context, userID string) ([]Project, error) {
	return s.repo.List(ctx, userID)
}
