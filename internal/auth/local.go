package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rowanlane/deckview/internal/repoerr"
)

// CredentialStore persists local credentials. It is satisfied by
// repository.CredentialRepository; the narrow copy here avoids an import
// cycle with the repository package.
type CredentialStore interface {
	Create(ctx context.Context, user *User, secretHash string) error
	Lookup(ctx context.Context, email, secretHash string) (*User, error)
	LookupByToken(ctx context.Context, tokenHash string) (*User, error)
	StoreToken(ctx context.Context, userID, tokenHash string) error
}

// LocalProvider is the credential-store-backed fallback used when no hosted
// auth provider is configured. The current session lives in memory; secrets
// and session tokens are stored hashed.
type LocalProvider struct {
	store  CredentialStore
	logger *slog.Logger

	mu        sync.Mutex
	current   *User
	token     string
	listeners []func(*User)
}

// NewLocalProvider creates a local auth provider over a credential store.
func NewLocalProvider(store CredentialStore, logger *slog.Logger) *LocalProvider {
	return &LocalProvider{store: store, logger: logger}
}

// SignUp registers a new local user.
func (p *LocalProvider) SignUp(ctx context.Context, email, secret string) (*User, error) {
	if email == "" || secret == "" {
		return nil, ErrInvalidCredentials
	}
	user := &User{ID: uuid.NewString(), Email: email}
	if err := p.store.Create(ctx, user, HashSecret(secret)); err != nil {
		return nil, fmt.Errorf("creating credentials: %w", err)
	}
	return user, nil
}

// SignIn validates credentials and establishes the current session.
func (p *LocalProvider) SignIn(ctx context.Context, email, secret string) (*User, error) {
	user, err := p.store.Lookup(ctx, email, HashSecret(secret))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}
	if err := p.store.StoreToken(ctx, user.ID, HashSecret(token)); err != nil {
		return nil, fmt.Errorf("storing session token: %w", err)
	}

	p.mu.Lock()
	p.current = user
	p.token = token
	listeners := append([]func(*User){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
	return user, nil
}

// CurrentSession returns the signed-in user. When the in-memory session no
// longer resolves against the store it is treated as a sign-out, not an
// error to surface: the session is dropped, listeners are notified with nil,
// and ErrSessionExpired tells the caller what happened.
func (p *LocalProvider) CurrentSession(ctx context.Context) (*User, error) {
	p.mu.Lock()
	current, token := p.current, p.token
	p.mu.Unlock()

	if current == nil {
		return nil, nil
	}

	user, err := p.store.LookupByToken(ctx, HashSecret(token))
	if err != nil {
		if p.logger != nil {
			p.logger.Info("session no longer valid, signing out", "user_id", current.ID, "error", err)
		}
		_ = p.SignOut(ctx)
		return nil, ErrSessionExpired
	}
	return user, nil
}

// ResolveToken maps a bearer token to a user. Used by the serving layer. A
// token that no longer resolves reports ErrSessionExpired so the caller can
// treat it as a sign-out.
func (p *LocalProvider) ResolveToken(ctx context.Context, token string) (*User, error) {
	user, err := p.store.LookupByToken(ctx, HashSecret(token))
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("resolving token: %w", err)
	}
	return user, nil
}

// OnSessionChange registers a callback invoked on sign-in and sign-out.
// Sign-out passes nil.
func (p *LocalProvider) OnSessionChange(fn func(*User)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// SignOut drops the current session.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.token = ""
	listeners := append([]func(*User){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
	return nil
}

// HashSecret returns the hex-encoded SHA-256 of a secret or token.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
