// Package service defines interfaces for domain services implemented in infra.
package service

// PasswordHasher abstracts the one-way password hashing capability.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
