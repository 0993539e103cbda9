// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	authService "github.com/allisson/inventory/internal/auth/service"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// authUseCase implements AuthUseCase for credential login and token introspection.
type authUseCase struct {
	userRepo       UserRepository
	passwordHasher authService.PasswordHasher
	tokenCodec     authService.TokenCodec
}

// Login verifies credentials and issues a signed access token.
//
// The password is checked before the active flag, so a deactivated account
// with wrong credentials still reports ErrInvalidCredentials rather than
// leaking its existence via ErrAccountInactive.
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	user, err := a.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordHasher.Compare(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, authDomain.ErrAccountInactive
	}

	token, expiresAt, err := a.tokenCodec.Issue(user)
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// Introspect verifies a token and returns the live account it references.
//
// Verification is purely cryptographic; the repository is only consulted
// after the signature and expiration pass. The returned user reflects the
// current database state, not the claims captured at issue time.
func (a *authUseCase) Introspect(ctx context.Context, token string) (*userDomain.User, error) {
	claims, err := a.tokenCodec.Verify(token)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrAccountNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, authDomain.ErrAccountInactive
	}

	return user, nil
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userRepo UserRepository,
	passwordHasher authService.PasswordHasher,
	tokenCodec authService.TokenCodec,
) AuthUseCase {
	return &authUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenCodec:     tokenCodec,
	}
}
