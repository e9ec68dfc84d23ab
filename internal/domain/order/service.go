package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/repoerr"
)

// Service reconciles and persists per-user project orderings.
//
// Reconciliation against the stored preference runs once per user session:
// after the first successful Load the session's working order is the source
// of truth and later refreshes reconcile against it instead. Invalidate
// resets that flag, typically after a project is created or deleted.
type Service struct {
	prefs  Repository
	logger *slog.Logger

	mu         sync.Mutex
	reconciled map[string]bool
}

// NewService creates a new order service.
func NewService(prefs Repository, logger *slog.Logger) *Service {
	return &Service{
		prefs:      prefs,
		logger:     logger,
		reconciled: make(map[string]bool),
	}
}

// Reconciled reports whether the stored preference has already been loaded
// for this user in the current session.
func (s *Service) Reconciled(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reconciled[userID]
}

// Invalidate resets the reconciled flag so the next Load refetches the
// stored preference.
func (s *Service) Invalidate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reconciled, userID)
}

// Load fetches the user's stored preference and reconciles it against the
// authoritative project set.
//
// A user with no stored preference gets the authoritative order, which is
// also persisted as their initial preference so later sessions reconcile
// against a real one. A failed fetch falls back to the authoritative order
// without retrying, so a broken store cannot block rendering. In every case
// the session is marked reconciled.
func (s *Service) Load(ctx context.Context, userID string, projects []project.Project) []project.Project {
	defer func() {
		s.mu.Lock()
		s.reconciled[userID] = true
		s.mu.Unlock()
	}()

	persisted, err := s.prefs.GetPreference(ctx, userID)
	if err != nil && !errors.Is(err, repoerr.ErrNotFound) {
		if s.logger != nil {
			s.logger.Warn("loading order preference failed, using authoritative order", "user_id", userID, "error", err)
		}
		return projects
	}

	if len(persisted) == 0 {
		if initErr := s.prefs.InitializePreference(ctx, userID, IDs(projects)); initErr != nil && s.logger != nil {
			s.logger.Warn("initializing order preference failed", "user_id", userID, "error", initErr)
		}
		return projects
	}

	return Reconcile(persisted, projects)
}

// Persist stores the full order as the user's preference. Full-replacement
// semantics make the call idempotent; the last completed call wins.
func (s *Service) Persist(ctx context.Context, userID string, ordered []project.Project) error {
	if err := s.prefs.PersistOrder(ctx, userID, IDs(ordered)); err != nil {
		return fmt.Errorf("persisting order: %w", err)
	}
	return nil
}

// RemoveEntry drops one project id from the stored preference, used when a
// project is deleted. Failures are logged, not propagated: the next
// reconciliation drops unknown ids anyway.
func (s *Service) RemoveEntry(ctx context.Context, userID, projectID string) {
	if err := s.prefs.RemoveEntry(ctx, userID, projectID); err != nil && s.logger != nil {
		s.logger.Warn("removing order entry failed", "user_id", userID, "project_id", projectID, "error", err)
	}
}
