// Package service declares the stateless collaborators the usecases depend on:
// credential hashing, session tokens and review metrics.
package service

// PasswordHasher turns sign-up passwords into stored hashes and verifies login attempts.
type PasswordHasher interface {
	// Hash returns a salted hash of password, suitable for the users table.
	Hash(password string) (string, error)

	// Check reports whether password matches a hash produced by Hash.
	// A malformed hash never matches.
	Check(password, hash string) bool
}
