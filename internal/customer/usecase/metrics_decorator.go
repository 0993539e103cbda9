package usecase

import (
	"context"
	"time"

	customerDomain "github.com/allisson/inventory/internal/customer/domain"
	"github.com/allisson/inventory/internal/metrics"
)

// customerUseCaseWithMetrics decorates CustomerUseCase with metrics instrumentation.
type customerUseCaseWithMetrics struct {
	next    CustomerUseCase
	metrics metrics.BusinessMetrics
}

// NewCustomerUseCaseWithMetrics wraps a CustomerUseCase with metrics recording.
func NewCustomerUseCaseWithMetrics(useCase CustomerUseCase, m metrics.BusinessMetrics) CustomerUseCase {
	return &customerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *customerUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "customers", operation, status)
	c.metrics.RecordDuration(ctx, "customers", operation, time.Since(start), status)
}

// Create records metrics for customer creation operations.
func (c *customerUseCaseWithMetrics) Create(
	ctx context.Context,
	input *customerDomain.CreateCustomerInput,
) (*customerDomain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Create(ctx, input)
	c.record(ctx, "customer_create", start, err)
	return customer, err
}

// Update records metrics for customer update operations.
func (c *customerUseCaseWithMetrics) Update(
	ctx context.Context,
	customerID int64,
	input *customerDomain.UpdateCustomerInput,
) (*customerDomain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Update(ctx, customerID, input)
	c.record(ctx, "customer_update", start, err)
	return customer, err
}

// Get records metrics for customer retrieval operations.
func (c *customerUseCaseWithMetrics) Get(ctx context.Context, customerID int64) (*customerDomain.Customer, error) {
	start := time.Now()
	customer, err := c.next.Get(ctx, customerID)
	c.record(ctx, "customer_get", start, err)
	return customer, err
}

// List records metrics for customer list operations.
func (c *customerUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*customerDomain.Customer, error) {
	start := time.Now()
	customers, err := c.next.List(ctx, offset, limit)
	c.record(ctx, "customer_list", start, err)
	return customers, err
}

// Delete records metrics for customer deletion operations.
func (c *customerUseCaseWithMetrics) Delete(ctx context.Context, customerID int64) error {
	start := time.Now()
	err := c.next.Delete(ctx, customerID)
	c.record(ctx, "customer_delete", start, err)
	return err
}
