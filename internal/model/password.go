package model

// PasswordHasher hashes passwords one way and verifies them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrPasswordMismatch when password does not match hash.
	Compare(hash, password string) error
}
