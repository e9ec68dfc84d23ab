package stats

import (
	"context"
	"log/slog"
)

// Service loads child-record collections for index building. Each collection
// degrades to empty on failure so one bad fetch never blocks the rest of the
// board; failures are logged and swallowed.
type Service struct {
	children ChildRecordRepository
	logger   *slog.Logger
}

// NewService creates a new stats service.
func NewService(children ChildRecordRepository, logger *slog.Logger) *Service {
	return &Service{children: children, logger: logger}
}

// Collections loads the five flat child-record collections for a user.
func (s *Service) Collections(ctx context.Context, userID string) Collections {
	var cols Collections
	var err error

	if cols.Notes, err = s.children.Notes(ctx, userID); err != nil {
		s.warn("notes", err)
		cols.Notes = nil
	}
	if cols.ProgressItems, err = s.children.ProgressItems(ctx, userID); err != nil {
		s.warn("progress items", err)
		cols.ProgressItems = nil
	}
	if cols.Stories, err = s.children.Stories(ctx, userID); err != nil {
		s.warn("stories", err)
		cols.Stories = nil
	}
	if cols.Journeys, err = s.children.Journeys(ctx, userID); err != nil {
		s.warn("journeys", err)
		cols.Journeys = nil
	}
	if cols.Designs, err = s.children.Designs(ctx, userID); err != nil {
		s.warn("designs", err)
		cols.Designs = nil
	}

	return cols
}

func (s *Service) warn(kind string, err error) {
	if s.logger != nil {
		s.logger.Warn("loading child collection failed", "kind", kind, "error", err)
	}
}
