package domain

import (
	"github.com/allisson/inventory/internal/errors"
)

// Authentication errors.
//
// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so responses don't reveal which usernames exist.
var (
	// ErrInvalidCredentials indicates the username/password pair did not match.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "incorrect username or password")

	// ErrAccountInactive indicates the account exists but is deactivated.
	ErrAccountInactive = errors.Wrap(errors.ErrForbidden, "inactive user")

	// ErrInvalidToken indicates the token signature or structure is invalid.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrTokenExpired indicates the token is past its expiration time.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrMalformedClaims indicates the token verified but its claims are unusable.
	ErrMalformedClaims = errors.Wrap(errors.ErrUnauthorized, "malformed token claims")

	// ErrAccountNotFound indicates a verified token references an account that
	// no longer exists. Treated as an authentication failure, not a lookup miss.
	ErrAccountNotFound = errors.Wrap(errors.ErrUnauthorized, "user not found")
)
