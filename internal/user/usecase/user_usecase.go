// Package usecase implements business logic orchestration for user account management.
package usecase

import (
	"context"
	"errors"
	"time"

	authService "github.com/allisson/inventory/internal/auth/service"
	"github.com/allisson/inventory/internal/database"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// userUseCase implements UserUseCase with uniqueness enforcement and password hashing.
type userUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher authService.PasswordHasher
}

// checkUsernameAvailable returns ErrUsernameAlreadyExists if another account
// (excluding excludeID) already holds the username.
func (u *userUseCase) checkUsernameAvailable(ctx context.Context, username string, excludeID int64) error {
	existing, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return userDomain.ErrUsernameAlreadyExists
	}
	return nil
}

// checkEmailAvailable returns ErrEmailAlreadyExists if another account
// (excluding excludeID) already holds the email.
func (u *userUseCase) checkEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return userDomain.ErrEmailAlreadyExists
	}
	return nil
}

// Create registers a new user account with a hashed password.
// The uniqueness checks and insert run in a single transaction so a duplicate
// is rejected before any write is committed.
func (u *userUseCase) Create(
	ctx context.Context,
	input *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	user := &userDomain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: u.passwordHasher.Hash(input.Password),
		FullName:     input.FullName,
		IsActive:     input.IsActive,
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if user.Role == "" {
		user.Role = userDomain.RoleUser
	}

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.checkUsernameAvailable(ctx, user.Username, 0); err != nil {
			return err
		}
		if err := u.checkEmailAvailable(ctx, user.Email, 0); err != nil {
			return err
		}
		return u.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update applies a partial update to an existing user.
// Username and email uniqueness are re-checked when those fields change,
// excluding the user's own record. A new password is hashed before storage.
func (u *userUseCase) Update(
	ctx context.Context,
	userID int64,
	input *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	var user *userDomain.User

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = u.userRepo.Get(ctx, userID)
		if err != nil {
			return err
		}

		if input.Username != nil && *input.Username != user.Username {
			if err := u.checkUsernameAvailable(ctx, *input.Username, userID); err != nil {
				return err
			}
			user.Username = *input.Username
		}
		if input.Email != nil && *input.Email != user.Email {
			if err := u.checkEmailAvailable(ctx, *input.Email, userID); err != nil {
				return err
			}
			user.Email = *input.Email
		}
		if input.Password != nil {
			user.PasswordHash = u.passwordHasher.Hash(*input.Password)
		}
		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.IsActive != nil {
			user.IsActive = *input.IsActive
		}
		if input.Role != nil {
			user.Role = *input.Role
		}

		return u.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by ID.
func (u *userUseCase) Get(ctx context.Context, userID int64) (*userDomain.User, error) {
	return u.userRepo.Get(ctx, userID)
}

// List retrieves users ordered by ID with pagination support.
func (u *userUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	return u.userRepo.List(ctx, offset, limit)
}

// Delete removes a user account.
func (u *userUseCase) Delete(ctx context.Context, userID int64) error {
	return u.userRepo.Delete(ctx, userID)
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordHasher authService.PasswordHasher,
) UserUseCase {
	return &userUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
	}
}
