package stats

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// fallbackConcurrency bounds the per-project fan-out after a batch failure.
const fallbackConcurrency = 8

// Loader fetches per-project stakeholder counts. It tries one batched
// request first and degrades to a concurrent per-project fan-out when the
// batch fails. It never returns an error: failed lookups default to 0 so a
// single bad request cannot block rendering the rest of the board.
type Loader struct {
	stakeholders StakeholderRepository
	logger       *slog.Logger
}

// NewLoader creates a stakeholder count loader.
func NewLoader(stakeholders StakeholderRepository, logger *slog.Logger) *Loader {
	return &Loader{stakeholders: stakeholders, logger: logger}
}

// StakeholderCounts returns a count for every given project id.
func (l *Loader) StakeholderCounts(ctx context.Context, projectIDs []string) map[string]int {
	counts, err := l.stakeholders.CountsForProjects(ctx, projectIDs)
	if err == nil {
		return withDefaults(counts, projectIDs)
	}

	if l.logger != nil {
		l.logger.Warn("batched stakeholder count failed, falling back to per-project requests", "error", err)
	}
	return l.countsPerProject(ctx, projectIDs)
}

func (l *Loader) countsPerProject(ctx context.Context, projectIDs []string) map[string]int {
	var mu sync.Mutex
	counts := make(map[string]int, len(projectIDs))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(fallbackConcurrency)
	for _, id := range projectIDs {
		group.Go(func() error {
			count, err := l.stakeholders.CountForProject(ctx, id)
			if err != nil {
				if l.logger != nil {
					l.logger.Warn("stakeholder count failed for project", "project_id", id, "error", err)
				}
				return nil
			}
			mu.Lock()
			counts[id] = count
			mu.Unlock()
			return nil
		})
	}
	// Workers swallow their own errors, so Wait only synchronizes.
	_ = group.Wait()

	return withDefaults(counts, projectIDs)
}

func withDefaults(counts map[string]int, projectIDs []string) map[string]int {
	result := make(map[string]int, len(projectIDs))
	for _, id := range projectIDs {
		result[id] = counts[id]
	}
	return result
}
