// Package usecase defines business logic interfaces for product catalog management.
package usecase

import (
	"context"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// ProductRepository defines persistence operations for products.
// Implementations must support transaction-aware operations via context propagation.
type ProductRepository interface {
	// Create stores a new product. The product's ID is populated on success.
	Create(ctx context.Context, product *productDomain.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *productDomain.Product) error

	// Get retrieves a product by ID. Returns ErrProductNotFound if not found.
	Get(ctx context.Context, productID int64) (*productDomain.Product, error)

	// List retrieves products ordered by ID with pagination support.
	List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error)

	// Delete removes a product by ID. Returns ErrProductNotFound if not found.
	Delete(ctx context.Context, productID int64) error
}

// ProductUseCase defines business logic operations for managing products.
type ProductUseCase interface {
	// Create adds a new product to the catalog.
	Create(ctx context.Context, input *productDomain.CreateProductInput) (*productDomain.Product, error)

	// Update applies a partial update to an existing product. Nil input fields
	// are left unchanged.
	Update(ctx context.Context, productID int64, input *productDomain.UpdateProductInput) (*productDomain.Product, error)

	// Get retrieves a product by ID. Returns ErrProductNotFound if not found.
	Get(ctx context.Context, productID int64) (*productDomain.Product, error)

	// List retrieves products with pagination support.
	List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error)

	// Delete removes a product. Returns ErrProductNotFound if not found.
	Delete(ctx context.Context, productID int64) error
}
