package usecase

import (
	"context"
	"time"

	"github.com/allisson/inventory/internal/metrics"
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// productUseCaseWithMetrics decorates ProductUseCase with metrics instrumentation.
type productUseCaseWithMetrics struct {
	next    ProductUseCase
	metrics metrics.BusinessMetrics
}

// NewProductUseCaseWithMetrics wraps a ProductUseCase with metrics recording.
func NewProductUseCaseWithMetrics(useCase ProductUseCase, m metrics.BusinessMetrics) ProductUseCase {
	return &productUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *productUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "products", operation, status)
	p.metrics.RecordDuration(ctx, "products", operation, time.Since(start), status)
}

// Create records metrics for product creation operations.
func (p *productUseCaseWithMetrics) Create(
	ctx context.Context,
	input *productDomain.CreateProductInput,
) (*productDomain.Product, error) {
	start := time.Now()
	product, err := p.next.Create(ctx, input)
	p.record(ctx, "product_create", start, err)
	return product, err
}

// Update records metrics for product update operations.
func (p *productUseCaseWithMetrics) Update(
	ctx context.Context,
	productID int64,
	input *productDomain.UpdateProductInput,
) (*productDomain.Product, error) {
	start := time.Now()
	product, err := p.next.Update(ctx, productID, input)
	p.record(ctx, "product_update", start, err)
	return product, err
}

// Get records metrics for product retrieval operations.
func (p *productUseCaseWithMetrics) Get(ctx context.Context, productID int64) (*productDomain.Product, error) {
	start := time.Now()
	product, err := p.next.Get(ctx, productID)
	p.record(ctx, "product_get", start, err)
	return product, err
}

// List records metrics for product list operations.
func (p *productUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*productDomain.Product, error) {
	start := time.Now()
	products, err := p.next.List(ctx, offset, limit)
	p.record(ctx, "product_list", start, err)
	return products, err
}

// Delete records metrics for product deletion operations.
func (p *productUseCaseWithMetrics) Delete(ctx context.Context, productID int64) error {
	start := time.Now()
	err := p.next.Delete(ctx, productID)
	p.record(ctx, "product_delete", start, err)
	return err
}
