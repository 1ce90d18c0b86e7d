package context

import (
	"context"

	"github.com/dtroode/storefront/internal/model"
)

type sessionKey struct{}

// Manager stores the verified session claim in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a copy of ctx carrying claim.
func (m *Manager) SetSessionToContext(ctx context.Context, claim model.SessionClaim) context.Context {
	return context.WithValue(ctx, sessionKey{}, claim)
}

// GetSessionFromContext returns the claim stored by SetSessionToContext.
// The boolean is false when the request carried no valid session.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.SessionClaim, bool) {
	claim, ok := ctx.Value(sessionKey{}).(model.SessionClaim)
	return claim, ok
}
