package domain

import (
	"github.com/allisson/inventory/internal/errors"
)

// User account errors.
var (
	// ErrUserNotFound indicates a user with the specified ID or username was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUsernameAlreadyExists indicates the username is taken by another account.
	ErrUsernameAlreadyExists = errors.Wrap(errors.ErrConflict, "username already registered")

	// ErrEmailAlreadyExists indicates the email is taken by another account.
	ErrEmailAlreadyExists = errors.Wrap(errors.ErrConflict, "email already registered")
)
