// Package domain defines the core entities for customer management.
package domain

import (
	"time"

	"github.com/allisson/inventory/internal/errors"
)

// Customer errors.
var (
	// ErrCustomerNotFound indicates a customer with the specified ID was not found.
	ErrCustomerNotFound = errors.Wrap(errors.ErrNotFound, "customer not found")

	// ErrCustomerEmailAlreadyExists indicates the email is taken by another customer.
	ErrCustomerEmailAlreadyExists = errors.Wrap(errors.ErrConflict, "email already registered")
)

// Customer represents a buyer tracked in the inventory system.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCustomerInput contains the parameters for creating a new customer.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Company string
}

// UpdateCustomerInput contains the parameters for a partial customer update.
// Nil fields are left unchanged.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Company *string
}
