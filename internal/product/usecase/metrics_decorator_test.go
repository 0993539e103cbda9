package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockProductUseCase is a mock implementation of ProductUseCase for decorator tests.
type mockProductUseCase struct {
	mock.Mock
}

func (m *mockProductUseCase) Create(
	ctx context.Context,
	input *productDomain.CreateProductInput,
) (*productDomain.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

func (m *mockProductUseCase) Update(
	ctx context.Context,
	productID int64,
	input *productDomain.UpdateProductInput,
) (*productDomain.Product, error) {
	args := m.Called(ctx, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

func (m *mockProductUseCase) Get(ctx context.Context, productID int64) (*productDomain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

func (m *mockProductUseCase) List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productDomain.Product), args.Error(1)
}

func (m *mockProductUseCase) Delete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func TestProductUseCaseWithMetrics(t *testing.T) {
	mockNext := &mockProductUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := NewProductUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("Create success", func(t *testing.T) {
		input := &productDomain.CreateProductInput{Name: "Laptop"}
		product := &productDomain.Product{ID: 1, Name: "Laptop"}

		mockNext.On("Create", ctx, input).Return(product, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "products", "product_create", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "product_create", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, product, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Create error", func(t *testing.T) {
		input := &productDomain.CreateProductInput{Name: "Laptop"}

		mockNext.On("Create", ctx, input).Return(nil, assert.AnError).Once()
		mockMetrics.On("RecordOperation", ctx, "products", "product_create", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "product_create", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Create(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get success", func(t *testing.T) {
		product := &productDomain.Product{ID: 1}

		mockNext.On("Get", ctx, int64(1)).Return(product, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "products", "product_get", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "product_get", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, product, res)
	})

	t.Run("List success", func(t *testing.T) {
		products := []*productDomain.Product{{ID: 1}}

		mockNext.On("List", ctx, 0, 50).Return(products, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "products", "product_list", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "product_list", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.List(ctx, 0, 50)
		assert.NoError(t, err)
		assert.Equal(t, products, res)
	})

	t.Run("Update success", func(t *testing.T) {
		input := &productDomain.UpdateProductInput{}
		product := &productDomain.Product{ID: 1}

		mockNext.On("Update", ctx, int64(1), input).Return(product, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "products", "product_update", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "product_update", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Update(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, product, res)
	})

	t.Run("Delete error", func(t *testing.T) {
		mockNext.On("Delete", ctx, int64(404)).Return(productDomain.ErrProductNotFound).Once()
		mockMetrics.On("RecordOperation", ctx, "products", "product_delete", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "products", "product_delete", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		err := uc.Delete(ctx, 404)
		assert.ErrorIs(t, err, productDomain.ErrProductNotFound)
	})
}
