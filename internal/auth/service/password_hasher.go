package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256PasswordHasher implements PasswordHasher using an unsalted SHA-256 digest.
//
// The digest is deterministic by contract: stored password hashes are plain
// SHA-256 hex digests and any implementation change would invalidate every
// existing credential. Interoperability with the existing user table takes
// precedence over adopting a salted KDF here.
type SHA256PasswordHasher struct{}

// Hash computes the lowercase hex SHA-256 digest of the password.
func (s *SHA256PasswordHasher) Hash(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

// Compare checks a plain text password against a stored digest in constant time.
func (s *SHA256PasswordHasher) Compare(password string, passwordHash string) bool {
	computed := s.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(passwordHash)) == 1
}

// NewSHA256PasswordHasher creates a new SHA-256 password hasher.
func NewSHA256PasswordHasher() *SHA256PasswordHasher {
	return &SHA256PasswordHasher{}
}
