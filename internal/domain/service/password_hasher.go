// Package service holds stateless domain contracts whose implementations
// live in infra, keeping business rules free of library imports.
package service

// PasswordHasher hides the hashing algorithm behind the domain boundary.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
