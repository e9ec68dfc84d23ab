// Package view holds the per-user board state: the working order, the
// derived stats index, and the filter/pagination window the rendering layer
// reads from. All state is replaced wholesale on transitions, never patched
// in place.
package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rowanlane/deckview/internal/domain/order"
	"github.com/rowanlane/deckview/internal/domain/project"
	"github.com/rowanlane/deckview/internal/domain/stats"
)

// ProjectService defines the project operations the view needs.
type ProjectService interface {
	Create(ctx context.Context, userID string, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, userID string, req project.UpdateRequest) (*project.Project, error)
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]project.Project, error)
}

// OrderService defines the ordering operations the view needs.
type OrderService interface {
	Reconciled(userID string) bool
	Invalidate(userID string)
	Load(ctx context.Context, userID string, projects []project.Project) []project.Project
	Persist(ctx context.Context, userID string, ordered []project.Project) error
	RemoveEntry(ctx context.Context, userID, projectID string)
}

// StatsService loads the child-record collections the index is built from.
type StatsService interface {
	Collections(ctx context.Context, userID string) stats.Collections
}

// StakeholderLoader supplies per-project stakeholder counts.
type StakeholderLoader interface {
	StakeholderCounts(ctx context.Context, projectIDs []string) map[string]int
}

// Config tunes the view window and search debounce.
type Config struct {
	InitialWindow int
	WindowStep    int
	Debounce      time.Duration
}

// DefaultConfig matches a three-column card grid page.
func DefaultConfig() Config {
	return Config{InitialWindow: 9, WindowStep: 9, Debounce: DefaultDebounce}
}

// Entry pairs a project with its derived stats for rendering.
type Entry struct {
	Project project.Project    `json:"project"`
	Stats   stats.ProjectStats `json:"stats"`
}

// Flags are the loading indicators exposed to the rendering layer.
type Flags struct {
	Reordering         bool `json:"reordering"`
	LoadingStats       bool `json:"loading_stats"`
	LoadingPreferences bool `json:"loading_preferences"`
}

// Session is one user's board view state. The rendering layer only reads
// from it; all mutation goes through the methods here.
type Session struct {
	userID   string
	projects ProjectService
	orders   OrderService
	stats    StatsService
	counts   StakeholderLoader
	logger   *slog.Logger
	cfg      Config

	debouncer *Debouncer

	mu            sync.Mutex
	generation    int
	loaded        bool
	workingOrder  []project.Project
	statsIndex    map[string]stats.ProjectStats
	query         string
	appliedQuery  string
	visibleCount  int
	flags         Flags
	notifications []string
}

// NewSession creates a board view session for one user.
func NewSession(userID string, projects ProjectService, orders OrderService, statsSvc StatsService, counts StakeholderLoader, cfg Config, logger *slog.Logger) *Session {
	if cfg.InitialWindow <= 0 {
		cfg.InitialWindow = DefaultConfig().InitialWindow
	}
	if cfg.WindowStep <= 0 {
		cfg.WindowStep = DefaultConfig().WindowStep
	}
	return &Session{
		userID:       userID,
		projects:     projects,
		orders:       orders,
		stats:        statsSvc,
		counts:       counts,
		logger:       logger,
		cfg:          cfg,
		debouncer:    NewDebouncer(cfg.Debounce),
		visibleCount: cfg.InitialWindow,
		statsIndex:   map[string]stats.ProjectStats{},
	}
}

// Refresh rebuilds the whole view state: authoritative projects, reconciled
// working order, and the derived stats index. Everything is swapped in
// atomically; if another Refresh or a sign-out started while this one was in
// flight, the stale result is discarded instead of applied.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	current := s.workingOrder
	s.flags.LoadingPreferences = !s.orders.Reconciled(s.userID)
	s.flags.LoadingStats = true
	s.mu.Unlock()

	projects, err := s.projects.List(ctx, s.userID)
	if err != nil {
		s.mu.Lock()
		s.flags.LoadingPreferences = false
		s.flags.LoadingStats = false
		s.mu.Unlock()
		return fmt.Errorf("listing projects: %w", err)
	}

	var ordered []project.Project
	if !s.orders.Reconciled(s.userID) {
		ordered = s.orders.Load(ctx, s.userID, projects)
	} else {
		// Session already reconciled: the working order is the source of
		// truth, so merge the fresh authoritative set against it.
		ordered = order.Reconcile(order.IDs(current), projects)
	}

	cols := s.stats.Collections(ctx, s.userID)
	counts := s.counts.StakeholderCounts(ctx, order.IDs(projects))
	index := stats.BuildIndex(projects, cols, counts)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		// A newer refresh or a sign-out superseded this one.
		return nil
	}
	if !sameOrder(s.workingOrder, current) {
		// A move landed while this refresh was in flight. The session's
		// current order wins, so re-reconcile the fresh authoritative set
		// against it rather than apply an order built from the snapshot.
		ordered = order.Reconcile(order.IDs(s.workingOrder), projects)
	}
	if len(ordered) != len(s.workingOrder) {
		s.visibleCount = s.cfg.InitialWindow
	}
	s.workingOrder = ordered
	s.statsIndex = index
	s.loaded = true
	s.flags.LoadingPreferences = false
	s.flags.LoadingStats = false
	return nil
}

// EnsureLoaded refreshes the view once if it has never been built.
func (s *Session) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// Move applies a drag-to-reorder gesture. The working order is replaced
// before the persistence call is issued and is never rolled back: the
// session's local order wins regardless of backend acknowledgement, and a
// failed persist only surfaces as a notification. Until the next Refresh the
// stored and local orders may diverge after a failure; reconciliation on a
// later refresh is the only resync point.
func (s *Session) Move(ctx context.Context, movedID, targetID string) {
	s.mu.Lock()
	next := order.ApplyMove(s.workingOrder, movedID, targetID)
	if sameOrder(next, s.workingOrder) {
		s.mu.Unlock()
		return
	}
	s.workingOrder = next
	s.flags.Reordering = true
	snapshot := next
	s.mu.Unlock()

	// Each persist sends the complete order, so overlapping moves are safe:
	// the last call to complete determines the stored order.
	err := s.orders.Persist(ctx, s.userID, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Reordering = false
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("persisting reorder failed", "user_id", s.userID, "error", err)
		}
		s.notifications = append(s.notifications, "Your new project order could not be saved and may not appear on other devices.")
	}
}

// SetQuery updates the search text. The raw query is visible immediately,
// but filtering only picks it up after the debounce window so rapid
// keystrokes don't each trigger a full filter pass. The visible window is
// deliberately not reset: window size persists across searches.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	s.debouncer.Debounce(func() {
		s.mu.Lock()
		s.appliedQuery = query
		s.mu.Unlock()
	})
}

// FlushQuery applies the pending query immediately, bypassing the debounce.
// Surfaces without a keystroke stream (and tests) use this.
func (s *Session) FlushQuery() {
	s.debouncer.Flush(func() {
		s.mu.Lock()
		s.appliedQuery = s.query
		s.mu.Unlock()
	})
}

// Query returns the immediately-visible search text.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// LoadMore grows the visible window by the configured step, clamped to the
// filtered result length (and never below the initial window).
func (s *Session) LoadMore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := filterProjects(s.workingOrder, s.appliedQuery)
	next := s.visibleCount + s.cfg.WindowStep
	if next > len(filtered) {
		next = len(filtered)
	}
	if next < s.cfg.InitialWindow {
		next = s.cfg.InitialWindow
	}
	s.visibleCount = next
}

// Visible returns the ordered, filtered, windowed slice the rendering layer
// shows, with each project paired to its derived stats.
func (s *Session) Visible() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := filterProjects(s.workingOrder, s.appliedQuery)
	n := s.visibleCount
	if n > len(filtered) {
		n = len(filtered)
	}

	entries := make([]Entry, 0, n)
	for _, proj := range filtered[:n] {
		entries = append(entries, Entry{Project: proj, Stats: s.statsIndex[proj.ID]})
	}
	return entries
}

// TotalFiltered reports how many projects match the applied query,
// independent of the visible window.
func (s *Session) TotalFiltered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(filterProjects(s.workingOrder, s.appliedQuery))
}

// Flags returns a snapshot of the loading indicators.
func (s *Session) Flags() Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// DrainNotifications returns and clears pending user-facing notifications.
func (s *Session) DrainNotifications() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.notifications
	s.notifications = nil
	return notes
}

// CreateProject adds a project and rebuilds the view. Creation changes the
// authoritative set, so the reconciliation flag is reset first.
func (s *Session) CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	proj, err := s.projects.Create(ctx, s.userID, req)
	if err != nil {
		return nil, err
	}
	s.orders.Invalidate(s.userID)
	if err := s.Refresh(ctx); err != nil {
		return proj, err
	}
	return proj, nil
}

// UpdateProject modifies a project and rebuilds the view.
func (s *Session) UpdateProject(ctx context.Context, req project.UpdateRequest) (*project.Project, error) {
	proj, err := s.projects.Update(ctx, s.userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return proj, err
	}
	return proj, nil
}

// DeleteProject removes a project, drops its ordering entry, and rebuilds
// the view.
func (s *Session) DeleteProject(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, s.userID, id); err != nil {
		return err
	}
	s.orders.RemoveEntry(ctx, s.userID, id)
	s.orders.Invalidate(s.userID)
	return s.Refresh(ctx)
}

// Close discards pending debounced work and invalidates any in-flight
// refresh so its result is never applied to a dead session.
func (s *Session) Close() {
	s.debouncer.Cancel()
	s.mu.Lock()
	s.generation++
	s.mu.Unlock()
}

func sameOrder(a, b []project.Project) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
