package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rowanlane/deckview/internal/auth"
	"github.com/rowanlane/deckview/internal/repository"
)

// CredentialRepository implements repository.CredentialRepository for SQLite
type CredentialRepository struct {
	db *DB
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create stores a new local user with a hashed secret
func (r *CredentialRepository) Create(ctx context.Context, user *auth.User, secretHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO credentials (user_id, email, secret_hash) VALUES (?, ?, ?)`,
		user.ID, user.Email, secretHash,
	)
	if err != nil {
		return fmt.Errorf("failed to create credentials: %w", err)
	}
	return nil
}

// Lookup resolves an email + hashed secret to a user
func (r *CredentialRepository) Lookup(ctx context.Context, email, secretHash string) (*auth.User, error) {
	var user auth.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, email FROM credentials WHERE email = ? AND secret_hash = ?`,
		email, secretHash,
	).Scan(&user.ID, &user.Email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}
	return &user, nil
}

// LookupByToken resolves a hashed session token to a user
func (r *CredentialRepository) LookupByToken(ctx context.Context, tokenHash string) (*auth.User, error) {
	var user auth.User
	err := r.db.QueryRowContext(ctx, `
		SELECT c.user_id, c.email
		FROM session_tokens t
		JOIN credentials c ON c.user_id = t.user_id
		WHERE t.token_hash = ?
	`, tokenHash).Scan(&user.ID, &user.Email)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up session token: %w", err)
	}
	return &user, nil
}

// StoreToken saves a hashed session token for a user
func (r *CredentialRepository) StoreToken(ctx context.Context, userID, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_tokens (token_hash, user_id) VALUES (?, ?)`,
		tokenHash, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}
