// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// Hash returns the hash of a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the hash.
	Verify(hash, password string) bool
}
