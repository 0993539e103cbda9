// Package usecase defines business logic interfaces for customer management.
package usecase

import (
	"context"

	customerDomain "github.com/allisson/inventory/internal/customer/domain"
)

// CustomerRepository defines persistence operations for customers.
// Implementations must support transaction-aware operations via context propagation.
type CustomerRepository interface {
	// Create stores a new customer. The customer's ID is populated on success.
	Create(ctx context.Context, customer *customerDomain.Customer) error

	// Update modifies an existing customer.
	Update(ctx context.Context, customer *customerDomain.Customer) error

	// Get retrieves a customer by ID. Returns ErrCustomerNotFound if not found.
	Get(ctx context.Context, customerID int64) (*customerDomain.Customer, error)

	// GetByEmail retrieves a customer by email. Returns ErrCustomerNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*customerDomain.Customer, error)

	// List retrieves customers ordered by ID with pagination support.
	List(ctx context.Context, offset, limit int) ([]*customerDomain.Customer, error)

	// Delete removes a customer by ID. Returns ErrCustomerNotFound if not found.
	Delete(ctx context.Context, customerID int64) error
}

// CustomerUseCase defines business logic operations for managing customers.
// It enforces email uniqueness across customer records.
type CustomerUseCase interface {
	// Create registers a new customer.
	// Returns ErrCustomerEmailAlreadyExists when the email is already taken.
	Create(ctx context.Context, input *customerDomain.CreateCustomerInput) (*customerDomain.Customer, error)

	// Update applies a partial update to an existing customer. Nil input fields
	// are left unchanged. Email uniqueness is re-checked when the email changes.
	Update(ctx context.Context, customerID int64, input *customerDomain.UpdateCustomerInput) (*customerDomain.Customer, error)

	// Get retrieves a customer by ID. Returns ErrCustomerNotFound if not found.
	Get(ctx context.Context, customerID int64) (*customerDomain.Customer, error)

	// List retrieves customers with pagination support.
	List(ctx context.Context, offset, limit int) ([]*customerDomain.Customer, error)

	// Delete removes a customer. Returns ErrCustomerNotFound if not found.
	Delete(ctx context.Context, customerID int64) error
}
