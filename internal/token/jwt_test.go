package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/model"
)

func validClaim(role model.Role) model.SessionClaim {
	now := time.Now().Truncate(time.Second)
	return model.SessionClaim{
		UserID:    uuid.New(),
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	for _, role := range []model.Role{model.RoleUser, model.RoleAdmin} {
		claim := validClaim(role)

		tok, err := j.Generate(claim)
		require.NoError(t, err)

		got, err := j.Parse(tok)
		require.NoError(t, err)
		assert.Equal(t, claim.UserID, got.UserID)
		assert.Equal(t, role, got.Role)
		assert.True(t, claim.IssuedAt.Equal(got.IssuedAt))
		assert.True(t, claim.ExpiresAt.Equal(got.ExpiresAt))
	}
}

func TestJWT_Parse_Rejects(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret")
	good, err := j.Generate(validClaim(model.RoleUser))
	require.NoError(t, err)

	expiredClaim := validClaim(model.RoleAdmin)
	expiredClaim.IssuedAt = time.Now().Add(-2 * time.Hour)
	expiredClaim.ExpiresAt = time.Now().Add(-time.Hour)
	expired, err := j.Generate(expiredClaim)
	require.NoError(t, err)

	otherSecret, err := NewJWT("other").Generate(validClaim(model.RoleAdmin))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           uuid.New(),
		Role:             model.RoleAdmin,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: uuid.New(),
		Role:   model.RoleUser,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "tampered", token: good[:len(good)-2] + "xx"},
		{name: "expired", token: expired},
		{name: "bad signature", token: otherSecret},
		{name: "none algorithm", token: noneAlg},
		{name: "missing expiry", token: noExpiry},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := j.Parse(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWT_Parse_RejectsUnknownRole(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    "root",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret").Parse(tok)
	assert.Error(t, err)
}

func TestJWT_Generate_InvalidClaim(t *testing.T) {
	j := NewJWT("secret")

	_, err := j.Generate(model.SessionClaim{Role: model.RoleUser, ExpiresAt: time.Now().Add(time.Hour)})
	assert.Error(t, err)

	_, err = j.Generate(model.SessionClaim{UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)})
	assert.ErrorIs(t, err, model.ErrInvalidRole)
}
