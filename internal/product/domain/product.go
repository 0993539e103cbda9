// Package domain defines the core entities for product catalog management.
package domain

import (
	"time"

	"github.com/allisson/inventory/internal/errors"
)

// Product errors.
var (
	// ErrProductNotFound indicates a product with the specified ID was not found.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")
)

// Product represents an item tracked in the inventory.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProductInput contains the parameters for creating a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
}

// UpdateProductInput contains the parameters for a partial product update.
// Nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
}
