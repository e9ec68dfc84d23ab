package auth

import (
	"context"
	"errors"
)

// User identifies an authenticated user.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

var (
	// ErrSessionExpired indicates the current session is no longer valid and
	// cannot be recovered in place; callers should sign the user out rather
	// than surface an error.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Provider supplies the current session and session-change notifications.
type Provider interface {
	CurrentSession(ctx context.Context) (*User, error)
	OnSessionChange(fn func(*User))
	SignOut(ctx context.Context) error
}
