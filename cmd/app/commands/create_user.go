package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/inventory/internal/app"
	"github.com/allisson/inventory/internal/config"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// RunCreateUser creates a new user account from the command line.
// Useful for bootstrapping the first admin account on a fresh deployment.
//
// Requirements: database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	username string,
	email string,
	password string,
	fullName string,
	role string,
	isActive bool,
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	userUC, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to get user use case: %w", err)
	}

	input := &userDomain.CreateUserInput{
		Username: username,
		Email:    email,
		Password: password,
		FullName: fullName,
		IsActive: isActive,
		Role:     role,
	}

	user, err := userUC.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", user.Role),
	)

	fmt.Printf("User created successfully:\n")
	fmt.Printf("  ID:       %d\n", user.ID)
	fmt.Printf("  Username: %s\n", user.Username)
	fmt.Printf("  Email:    %s\n", user.Email)
	fmt.Printf("  Role:     %s\n", user.Role)
	return nil
}
