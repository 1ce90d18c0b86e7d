package model

// TokenManager signs and verifies session claims.
type TokenManager interface {
	Generate(claim SessionClaim) (string, error)
	Parse(token string) (SessionClaim, error)
}
