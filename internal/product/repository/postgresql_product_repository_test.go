package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productDomain "github.com/allisson/inventory/internal/product/domain"
	"github.com/allisson/inventory/internal/testutil"
)

func testPostgresProduct(name string) *productDomain.Product {
	return &productDomain.Product{
		Name:        name,
		Description: "test product",
		Price:       99.99,
		Stock:       25,
		Category:    "electronics",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestNewPostgreSQLProductRepository(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLProductRepository{}, repo)
}

func TestPostgreSQLProductRepository_Create(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	product := testPostgresProduct("Laptop")

	err := repo.Create(ctx, product)
	require.NoError(t, err)
	assert.NotZero(t, product.ID)

	retrieved, err := repo.Get(ctx, product.ID)
	require.NoError(t, err)

	assert.Equal(t, product.Name, retrieved.Name)
	assert.Equal(t, product.Description, retrieved.Description)
	assert.Equal(t, product.Price, retrieved.Price)
	assert.Equal(t, product.Stock, retrieved.Stock)
	assert.Equal(t, product.Category, retrieved.Category)
	assert.WithinDuration(t, product.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestPostgreSQLProductRepository_Get_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)

	_, err := repo.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, productDomain.ErrProductNotFound)
}

func TestPostgreSQLProductRepository_Update(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	product := testPostgresProduct("Laptop")
	require.NoError(t, repo.Create(ctx, product))

	product.Price = 79.99
	product.Stock = 5

	err := repo.Update(ctx, product)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 79.99, retrieved.Price)
	assert.Equal(t, 5, retrieved.Stock)
	assert.Equal(t, "Laptop", retrieved.Name)
}

func TestPostgreSQLProductRepository_List(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testPostgresProduct("Laptop")))
	require.NoError(t, repo.Create(ctx, testPostgresProduct("Mouse")))
	require.NoError(t, repo.Create(ctx, testPostgresProduct("Keyboard")))

	products, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, "Laptop", products[0].Name)

	products, err = repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse", products[0].Name)

	products, err = repo.List(ctx, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestPostgreSQLProductRepository_Delete(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	product := testPostgresProduct("Laptop")
	require.NoError(t, repo.Create(ctx, product))

	err := repo.Delete(ctx, product.ID)
	require.NoError(t, err)

	_, err = repo.Get(ctx, product.ID)
	assert.ErrorIs(t, err, productDomain.ErrProductNotFound)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, productDomain.ErrProductNotFound)
}
