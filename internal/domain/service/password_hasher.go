// Package service defines the ports the use cases depend on for tokens, passwords and the identity provider.
package service

// PasswordHasher hashes and verifies local account passwords.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Passwords longer than the algorithm accepts are an error.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. An empty hash never matches.
	Check(password, hash string) bool
}
