// Package authctx carries the authenticated identity through request
// contexts between the token middleware and downstream handlers.
package authctx

import (
	"context"

	"github.com/taskhub/server/internal/model"
)

type contextKey struct{}

// claimsKey is the context key holding the decoded token claims.
var claimsKey = contextKey{}

// Manager implements model.ContextManager over plain context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClaimsToContext returns a child context carrying the decoded claims.
func (m *Manager) SetClaimsToContext(ctx context.Context, claims model.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the claims set by the token middleware.
// The boolean reports whether the request was authenticated.
func (m *Manager) GetClaimsFromContext(ctx context.Context) (model.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(model.TokenClaims)
	return claims, ok
}
