// Package repository implements data persistence for products.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx().
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// PostgreSQLProductRepository implements product persistence for PostgreSQL.
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// Create inserts a new product and populates its generated ID.
func (p *PostgreSQLProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO products (name, description, price, stock, category, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Update modifies an existing product.
func (p *PostgreSQLProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE products
			  SET name = $1,
				  description = $2,
				  price = $3,
				  stock = $4,
				  category = $5
			  WHERE id = $6`

	_, err := querier.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
	}
	return nil
}

// Get retrieves a product by ID.
func (p *PostgreSQLProductRepository) Get(ctx context.Context, productID int64) (*productDomain.Product, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, price, stock, category, created_at
			  FROM products WHERE id = $1`

	var product productDomain.Product

	err := querier.QueryRowContext(ctx, query, productID).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Category,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, productDomain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product")
	}

	return &product, nil
}

// List retrieves products ordered by ID with pagination support.
func (p *PostgreSQLProductRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*productDomain.Product, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, description, price, stock, category, created_at
			  FROM products ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	products := []*productDomain.Product{}
	for rows.Next() {
		var product productDomain.Product

		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.Category,
			&product.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}

		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}

// Delete removes a product by ID.
func (p *PostgreSQLProductRepository) Delete(ctx context.Context, productID int64) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}
	if affected == 0 {
		return productDomain.ErrProductNotFound
	}
	return nil
}

// NewPostgreSQLProductRepository creates a new PostgreSQL product repository.
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{db: db}
}
