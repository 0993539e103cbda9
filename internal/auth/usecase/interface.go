// Package usecase defines business logic interfaces for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// UserRepository defines the user lookups needed by authentication.
// This is a subset of the user repository; the full interface lives in the
// user use case package.
type UserRepository interface {
	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID int64) (*userDomain.User, error)

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// AuthUseCase defines business logic operations for authentication.
type AuthUseCase interface {
	// Login verifies a username/password pair and issues a signed access token.
	//
	// Unknown usernames and wrong passwords both return ErrInvalidCredentials
	// so the response never reveals whether a username exists. An account that
	// matches but is deactivated returns ErrAccountInactive.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Introspect verifies an access token and returns the live account it
	// references, loaded fresh from the repository.
	//
	// The token signature and expiration are checked before any database
	// access. A verified token whose account has been deleted returns
	// ErrAccountNotFound; a deactivated account returns ErrAccountInactive,
	// so deactivation takes effect immediately for outstanding tokens.
	Introspect(ctx context.Context, token string) (*userDomain.User, error)
}
