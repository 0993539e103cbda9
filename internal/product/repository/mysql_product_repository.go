package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
	productDomain "github.com/allisson/inventory/internal/product/domain"
)

// MySQLProductRepository implements product persistence for MySQL.
type MySQLProductRepository struct {
	db *sql.DB
}

// Create inserts a new product and populates its generated ID.
func (m *MySQLProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO products (name, description, price, stock, category, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Category,
		product.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}

	productID, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get product id")
	}
	product.ID = productID
	return nil
}

// Update modifies an existing product.
func (m *MySQLProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE products
			  SET name = ?,
				  description = ?,
				  price = ?,
				  stock = ?,
				  category = ?
			  WHERE id = ?`

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
func (m *MySQLProductRepository) Get(ctx context.Context, productID int64) (*productDomain.Product, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, price, stock, category, created_at
			  FROM products WHERE id = ?`

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
func (m *MySQLProductRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*productDomain.Product, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, description, price, stock, category, created_at
			  FROM products ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
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
func (m *MySQLProductRepository) Delete(ctx context.Context, productID int64) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, productID)
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

// NewMySQLProductRepository creates a new MySQL product repository.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}
