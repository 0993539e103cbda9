// Package usecase defines business logic interfaces for user account management.
package usecase

import (
	"context"

	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user. The user's ID and CreatedAt are populated on success.
	Create(ctx context.Context, user *userDomain.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *userDomain.User) error

	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID int64) (*userDomain.User, error)

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// List retrieves users ordered by ID with pagination support.
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)

	// Delete removes a user by ID. Returns ErrUserNotFound if not found.
	Delete(ctx context.Context, userID int64) error
}

// UserUseCase defines business logic operations for managing user accounts.
// It enforces username and email uniqueness and hashes passwords before
// they reach the repository.
type UserUseCase interface {
	// Create registers a new user account.
	// Returns ErrUsernameAlreadyExists or ErrEmailAlreadyExists when the
	// username or email is already taken.
	Create(ctx context.Context, input *userDomain.CreateUserInput) (*userDomain.User, error)

	// Update applies a partial update to an existing user. Nil input fields
	// are left unchanged. Uniqueness is re-checked when username or email change.
	Update(ctx context.Context, userID int64, input *userDomain.UpdateUserInput) (*userDomain.User, error)

	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID int64) (*userDomain.User, error)

	// List retrieves users with pagination support.
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)

	// Delete removes a user account. Returns ErrUserNotFound if not found.
	Delete(ctx context.Context, userID int64) error
}
