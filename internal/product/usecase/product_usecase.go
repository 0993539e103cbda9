// Package usecase implements business logic orchestration for product catalog management.
package usecase

import (
	"context"
	"time"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// productUseCase implements ProductUseCase.
type productUseCase struct {
	productRepo ProductRepository
}

// Create adds a new product to the catalog.
func (p *productUseCase) Create(
	ctx context.Context,
	input *productDomain.CreateProductInput,
) (*productDomain.Product, error) {
	product := &productDomain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		CreatedAt:   time.Now().UTC(),
	}

	if err := p.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update applies a partial update to an existing product.
func (p *productUseCase) Update(
	ctx context.Context,
	productID int64,
	input *productDomain.UpdateProductInput,
) (*productDomain.Product, error) {
	product, err := p.productRepo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		product.Category = *input.Category
	}

	if err := p.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Get retrieves a product by ID.
func (p *productUseCase) Get(ctx context.Context, productID int64) (*productDomain.Product, error) {
	return p.productRepo.Get(ctx, productID)
}

// List retrieves products ordered by ID with pagination support.
func (p *productUseCase) List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error) {
	return p.productRepo.List(ctx, offset, limit)
}

// Delete removes a product from the catalog.
func (p *productUseCase) Delete(ctx context.Context, productID int64) error {
	return p.productRepo.Delete(ctx, productID)
}

// NewProductUseCase creates a new ProductUseCase with the provided dependencies.
func NewProductUseCase(productRepo ProductRepository) ProductUseCase {
	return &productUseCase{productRepo: productRepo}
}
