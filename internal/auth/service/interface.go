// Package service provides technical services for authentication operations.
//
// This package implements password digest handling and signed access token
// encoding/decoding used by the authentication use cases.
package service

import (
	"time"

	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// PasswordHasher defines operations for password digest computation and comparison.
//
// The digest function is deterministic: the same password always produces the
// same digest, so credential checks are a pure digest comparison without any
// per-user state.
type PasswordHasher interface {
	// Hash computes the digest of a plain text password.
	Hash(password string) string

	// Compare checks a plain text password against a stored digest.
	// Returns true if the password matches. The comparison is constant-time
	// to prevent timing attacks.
	Compare(password string, passwordHash string) bool
}

// TokenCodec defines operations for issuing and verifying signed access tokens.
//
// Tokens are self-contained: all claims are embedded in the token and protected
// by an HMAC signature, so verification requires no server-side token storage.
type TokenCodec interface {
	// Issue creates a signed access token for the given user.
	// Returns the encoded token and its expiration time.
	Issue(user *userDomain.User) (token string, expiresAt time.Time, err error)

	// Verify checks a token's signature and expiration and returns its claims.
	// Returns ErrTokenExpired if the token is past its expiration, or
	// ErrInvalidToken for any other verification failure (bad signature,
	// malformed token, unexpected signing method).
	Verify(token string) (*AccessClaims, error)
}
