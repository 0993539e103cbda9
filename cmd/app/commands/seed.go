package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/inventory/internal/app"
	"github.com/allisson/inventory/internal/config"
	customerDomain "github.com/allisson/inventory/internal/customer/domain"
	productDomain "github.com/allisson/inventory/internal/product/domain"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// RunSeed loads demo data into an empty database.
// Each entity group is only seeded when its table has no rows, so the command
// is safe to run repeatedly.
//
// Requirements: database must be migrated and accessible.
func RunSeed(ctx context.Context) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	if err := seedProducts(ctx, container, logger); err != nil {
		return err
	}
	if err := seedCustomers(ctx, container, logger); err != nil {
		return err
	}
	if err := seedUsers(ctx, container, logger); err != nil {
		return err
	}

	logger.Info("seed completed successfully")
	return nil
}

func seedProducts(ctx context.Context, container *app.Container, logger *slog.Logger) error {
	productUC, err := container.ProductUseCase()
	if err != nil {
		return fmt.Errorf("failed to get product use case: %w", err)
	}

	existing, err := productUC.List(ctx, 0, 1)
	if err != nil {
		return fmt.Errorf("failed to check for existing products: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("products already present, skipping")
		return nil
	}

	products := []*productDomain.CreateProductInput{
		{Name: "Laptop", Description: "High-performance laptop", Price: 999.99, Stock: 50, Category: "Electronics"},
		{Name: "Mouse", Description: "Wireless mouse", Price: 29.99, Stock: 100, Category: "Accessories"},
		{Name: "Keyboard", Description: "Mechanical keyboard", Price: 89.99, Stock: 75, Category: "Accessories"},
		{Name: "Monitor", Description: "27-inch 4K monitor", Price: 449.99, Stock: 30, Category: "Electronics"},
	}

	for _, input := range products {
		if _, err := productUC.Create(ctx, input); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", input.Name, err)
		}
	}

	logger.Info("seeded products", slog.Int("count", len(products)))
	return nil
}

func seedCustomers(ctx context.Context, container *app.Container, logger *slog.Logger) error {
	customerUC, err := container.CustomerUseCase()
	if err != nil {
		return fmt.Errorf("failed to get customer use case: %w", err)
	}

	existing, err := customerUC.List(ctx, 0, 1)
	if err != nil {
		return fmt.Errorf("failed to check for existing customers: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("customers already present, skipping")
		return nil
	}

	customers := []*customerDomain.CreateCustomerInput{
		{Name: "John Doe", Email: "john@example.com", Phone: "+1234567890", Address: "123 Main St, New York, NY", Company: "Acme Corp"},
		{Name: "Jane Smith", Email: "jane@example.com", Phone: "+0987654321", Address: "456 Oak Ave, Los Angeles, CA", Company: "Tech Solutions"},
		{Name: "Bob Johnson", Email: "bob@example.com", Phone: "+1122334455", Address: "789 Pine Rd, Chicago, IL", Company: "Global Industries"},
	}

	for _, input := range customers {
		if _, err := customerUC.Create(ctx, input); err != nil {
			return fmt.Errorf("failed to seed customer %q: %w", input.Name, err)
		}
	}

	logger.Info("seeded customers", slog.Int("count", len(customers)))
	return nil
}

func seedUsers(ctx context.Context, container *app.Container, logger *slog.Logger) error {
	userUC, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to get user use case: %w", err)
	}

	existing, err := userUC.List(ctx, 0, 1)
	if err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("users already present, skipping")
		return nil
	}

	users := []*userDomain.CreateUserInput{
		{Username: "admin", Email: "admin@example.com", Password: "admin123", FullName: "Admin User", IsActive: true, Role: userDomain.RoleAdmin},
		{Username: "manager", Email: "manager@example.com", Password: "manager123", FullName: "Manager User", IsActive: true, Role: userDomain.RoleManager},
		{Username: "johndoe", Email: "john.user@example.com", Password: "password123", FullName: "John Doe", IsActive: true, Role: userDomain.RoleUser},
	}

	for _, input := range users {
		if _, err := userUC.Create(ctx, input); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", input.Username, err)
		}
	}

	logger.Info("seeded users", slog.Int("count", len(users)))
	return nil
}
