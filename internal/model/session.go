package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaim is the stateless proof of a signed-in user. It is derived from
// a User at login and never persisted.
type SessionClaim struct {
	UserID    uuid.UUID
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the claim grants admin access.
func (c SessionClaim) IsAdmin() bool {
	return c.Role.IsAdmin()
}

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "session_token"
