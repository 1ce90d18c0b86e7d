package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by stores when a write violates a uniqueness
	// or referential constraint.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials is the root of every authentication failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch is returned by a PasswordHasher when the password does not match the hash.
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrPasswordTooLong is returned by a PasswordHasher for input it cannot hash.
	ErrPasswordTooLong = errors.New("password too long")
	// ErrInvalidRole is returned when a role string is neither "user" nor "admin".
	ErrInvalidRole = errors.New("invalid role")
)

// AuthFailure tells why credentials were rejected. It is for logs only and
// must never reach the client.
type AuthFailure string

const (
	AuthFailureNotFound    AuthFailure = "not_found"
	AuthFailureBadPassword AuthFailure = "bad_password"
)

// AuthError is returned by credential verification. It unwraps to ErrInvalidCredentials.
type AuthError struct {
	Reason AuthFailure
}

func (e *AuthError) Error() string {
	return "invalid credentials: " + string(e.Reason)
}

func (e *AuthError) Unwrap() error {
	return ErrInvalidCredentials
}
