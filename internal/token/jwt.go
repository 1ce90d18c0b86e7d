package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

// Claims is the JWT payload of a session cookie.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID  `json:"user_id"`
	Role   model.Role `json:"role"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: []byte(secretKey)}
}

// Generate signs the claim. IssuedAt and ExpiresAt are taken from the claim as is.
func (j *JWT) Generate(claim model.SessionClaim) (string, error) {
	if claim.UserID == uuid.Nil {
		return "", errors.New("session claim has no user id")
	}
	if !claim.Role.IsValid() {
		return "", fmt.Errorf("session claim: %w", model.ErrInvalidRole)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claim.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(claim.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claim.ExpiresAt),
		},
		UserID: claim.UserID,
		Role:   claim.Role,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse verifies signature and expiry and returns the embedded claim.
func (j *JWT) Parse(tokenString string) (model.SessionClaim, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return model.SessionClaim{}, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !token.Valid {
		return model.SessionClaim{}, errors.New("session token is invalid")
	}
	if claims.UserID == uuid.Nil {
		return model.SessionClaim{}, errors.New("session token has no user id")
	}
	if !claims.Role.IsValid() {
		return model.SessionClaim{}, fmt.Errorf("session token: %w", model.ErrInvalidRole)
	}

	claim := model.SessionClaim{
		UserID: claims.UserID,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		claim.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		claim.ExpiresAt = claims.ExpiresAt.Time
	}

	return claim, nil
}
