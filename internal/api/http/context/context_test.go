package context

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager()
	claim := model.SessionClaim{
		UserID:    uuid.New(),
		Role:      model.RoleAdmin,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	ctx := m.SetSessionToContext(context.Background(), claim)

	got, ok := m.GetSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, claim, got)
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetSessionFromContext(context.Background())
	assert.False(t, ok)

	type otherKey string
	ctx := context.WithValue(context.Background(), otherKey("session"), model.SessionClaim{})
	_, ok = m.GetSessionFromContext(ctx)
	assert.False(t, ok)
}
