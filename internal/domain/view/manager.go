package view

import (
	"log/slog"
	"sync"

	"github.com/rowanlane/deckview/internal/auth"
)

// Manager hands out one Session per user and evicts them on sign-out.
type Manager struct {
	projects ProjectService
	orders   OrderService
	stats    StatsService
	counts   StakeholderLoader
	cfg      Config
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager over the domain services.
func NewManager(projects ProjectService, orders OrderService, statsSvc StatsService, counts StakeholderLoader, cfg Config, logger *slog.Logger) *Manager {
	return &Manager{
		projects: projects,
		orders:   orders,
		stats:    statsSvc,
		counts:   counts,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Session returns the user's view session, creating it on first use.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[userID]; ok {
		return sess
	}
	sess := NewSession(userID, m.projects, m.orders, m.stats, m.counts, m.cfg, m.logger)
	m.sessions[userID] = sess
	return sess
}

// Evict closes and removes one user's session.
func (m *Manager) Evict(userID string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	if ok {
		sess.Close()
	}
	m.orders.Invalidate(userID)
}

// HandleSessionChange is wired to the auth provider: a sign-out (nil user)
// evicts every session; a sign-in evicts any stale session for that user so
// the next access starts fresh.
func (m *Manager) HandleSessionChange(user *auth.User) {
	if user == nil {
		m.mu.Lock()
		sessions := m.sessions
		m.sessions = make(map[string]*Session)
		m.mu.Unlock()

		for id, sess := range sessions {
			sess.Close()
			m.orders.Invalidate(id)
		}
		return
	}
	m.Evict(user.ID)
}
