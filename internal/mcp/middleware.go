package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rowanlane/deckview/internal/auth"
)

type contextKey int

const userIDKey contextKey = iota

// getUserID extracts the authenticated user ID from context.
func getUserID(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}

// UserResolver resolves a user from a bearer token.
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*auth.User, error)
}

// authMiddleware implements bearer token authentication as MCP middleware.
// An expired session is treated as a sign-out: the session ender fires so
// session-change listeners evict the user's board state, then the request
// is rejected.
func authMiddleware(resolver UserResolver, sessions SessionEnder) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			header := extra.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			user, err := resolver.ResolveToken(ctx, token)
			if err != nil {
				if errors.Is(err, auth.ErrSessionExpired) && sessions != nil {
					_ = sessions.SignOut(ctx)
				}
				return nil, fmt.Errorf("unauthorized: %w", err)
			}

			ctx = context.WithValue(ctx, userIDKey, user.ID)
			return next(ctx, method, req)
		}
	}
}

// noAuthMiddleware injects a default user when auth is disabled.
func noAuthMiddleware(defaultUser string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx = context.WithValue(ctx, userIDKey, defaultUser)
			return next(ctx, method, req)
		}
	}
}
