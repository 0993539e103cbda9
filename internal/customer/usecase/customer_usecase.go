// Package usecase implements business logic orchestration for customer management.
package usecase

import (
	"context"
	"errors"
	"time"

	customerDomain "github.com/allisson/inventory/internal/customer/domain"
	"github.com/allisson/inventory/internal/database"
)

// customerUseCase implements CustomerUseCase with email uniqueness enforcement.
type customerUseCase struct {
	txManager    database.TxManager
	customerRepo CustomerRepository
}

// checkEmailAvailable returns ErrCustomerEmailAlreadyExists if another customer
// (excluding excludeID) already holds the email.
func (c *customerUseCase) checkEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	existing, err := c.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, customerDomain.ErrCustomerNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return customerDomain.ErrCustomerEmailAlreadyExists
	}
	return nil
}

// Create registers a new customer.
// The uniqueness check and insert run in a single transaction so a duplicate
// is rejected before any write is committed.
func (c *customerUseCase) Create(
	ctx context.Context,
	input *customerDomain.CreateCustomerInput,
) (*customerDomain.Customer, error) {
	customer := &customerDomain.Customer{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Company:   input.Company,
		CreatedAt: time.Now().UTC(),
	}

	err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := c.checkEmailAvailable(ctx, customer.Email, 0); err != nil {
			return err
		}
		return c.customerRepo.Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// Update applies a partial update to an existing customer.
// Email uniqueness is re-checked when the email changes, excluding the
// customer's own record.
func (c *customerUseCase) Update(
	ctx context.Context,
	customerID int64,
	input *customerDomain.UpdateCustomerInput,
) (*customerDomain.Customer, error) {
	var customer *customerDomain.Customer

	err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		customer, err = c.customerRepo.Get(ctx, customerID)
		if err != nil {
			return err
		}

		if input.Email != nil && *input.Email != customer.Email {
			if err := c.checkEmailAvailable(ctx, *input.Email, customerID); err != nil {
				return err
			}
			customer.Email = *input.Email
		}
		if input.Name != nil {
			customer.Name = *input.Name
		}
		if input.Phone != nil {
			customer.Phone = *input.Phone
		}
		if input.Address != nil {
			customer.Address = *input.Address
		}
		if input.Company != nil {
			customer.Company = *input.Company
		}

		return c.customerRepo.Update(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// Get retrieves a customer by ID.
func (c *customerUseCase) Get(ctx context.Context, customerID int64) (*customerDomain.Customer, error) {
	return c.customerRepo.Get(ctx, customerID)
}

// List retrieves customers ordered by ID with pagination support.
func (c *customerUseCase) List(ctx context.Context, offset, limit int) ([]*customerDomain.Customer, error) {
	return c.customerRepo.List(ctx, offset, limit)
}

// Delete removes a customer.
func (c *customerUseCase) Delete(ctx context.Context, customerID int64) error {
	return c.customerRepo.Delete(ctx, customerID)
}

// NewCustomerUseCase creates a new CustomerUseCase with the provided dependencies.
func NewCustomerUseCase(txManager database.TxManager, customerRepo CustomerRepository) CustomerUseCase {
	return &customerUseCase{
		txManager:    txManager,
		customerRepo: customerRepo,
	}
}
