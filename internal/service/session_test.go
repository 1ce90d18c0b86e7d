package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/mocks"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/token"
)

func TestSession_IssueStampsWindow(t *testing.T) {
	t.Parallel()

	manager := mocks.NewTokenManager(t)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 600, time.UTC)
	userID := uuid.New()

	manager.On("Generate", mock.MatchedBy(func(c model.SessionClaim) bool {
		return c.UserID == userID &&
			c.IssuedAt.Equal(fixed.Truncate(time.Second)) &&
			c.ExpiresAt.Equal(fixed.Truncate(time.Second).Add(time.Hour))
	})).Return("signed", nil)

	s := NewSession(manager, time.Hour)
	s.now = func() time.Time { return fixed }

	tok, exp, err := s.Issue(model.SessionClaim{UserID: userID, Role: model.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "signed", tok)
	assert.Equal(t, fixed.Truncate(time.Second).Add(time.Hour), exp)
}

func TestSession_DefaultTTL(t *testing.T) {
	t.Parallel()

	s := NewSession(mocks.NewTokenManager(t), 0)
	assert.Equal(t, DefaultSessionTTL, s.TTL())
}

func TestSession_VerifyWrapsFailure(t *testing.T) {
	t.Parallel()

	manager := mocks.NewTokenManager(t)
	cause := errors.New("bad signature")
	manager.On("Parse", "tampered").Return(model.SessionClaim{}, cause)

	_, err := NewSession(manager, time.Hour).Verify("tampered")
	assert.ErrorIs(t, err, cause)
}

func TestSession_RoundTripWithJWT(t *testing.T) {
	t.Parallel()

	s := NewSession(token.NewJWT("test-secret"), time.Hour)
	userID := uuid.New()

	tok, _, err := s.Issue(model.SessionClaim{UserID: userID, Role: model.RoleAdmin})
	require.NoError(t, err)

	claim, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, claim.UserID)
	assert.True(t, claim.IsAdmin())

	expired := NewSession(token.NewJWT("test-secret"), time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(model.SessionClaim{UserID: userID, Role: model.RoleUser})
	require.NoError(t, err)

	_, err = s.Verify(old)
	assert.Error(t, err)
}
