package service

import (
	"fmt"
	"time"

	"github.com/dtroode/storefront/internal/model"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Session turns verified claims into signed tokens and back.
type Session struct {
	manager model.TokenManager
	ttl     time.Duration
	now     func() time.Time
}

func NewSession(manager model.TokenManager, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Session{
		manager: manager,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue stamps the claim with its validity window and signs it.
func (s *Session) Issue(claim model.SessionClaim) (string, time.Time, error) {
	now := s.now().Truncate(time.Second)
	claim.IssuedAt = now
	claim.ExpiresAt = now.Add(s.ttl)

	token, err := s.manager.Generate(claim)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}

	return token, claim.ExpiresAt, nil
}

// Verify decodes a token. Any failure means there is no session.
func (s *Session) Verify(token string) (model.SessionClaim, error) {
	claim, err := s.manager.Parse(token)
	if err != nil {
		return model.SessionClaim{}, fmt.Errorf("failed to verify session: %w", err)
	}
	return claim, nil
}

// TTL returns the configured session lifetime.
func (s *Session) TTL() time.Duration {
	return s.ttl
}
