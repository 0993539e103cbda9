// Package repository implements data persistence for customers.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). Unique index violations on email are translated into
// ErrCustomerEmailAlreadyExists.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	customerDomain "github.com/allisson/inventory/internal/customer/domain"
	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgreSQLCustomerRepository implements customer persistence for PostgreSQL.
type PostgreSQLCustomerRepository struct {
	db *sql.DB
}

// Create inserts a new customer and populates its generated ID.
func (p *PostgreSQLCustomerRepository) Create(ctx context.Context, customer *customerDomain.Customer) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO customers (name, email, phone, address, company, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		nullString(customer.Phone),
		nullString(customer.Address),
		nullString(customer.Company),
		customer.CreatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return customerDomain.ErrCustomerEmailAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create customer")
	}
	return nil
}

// Update modifies an existing customer.
func (p *PostgreSQLCustomerRepository) Update(ctx context.Context, customer *customerDomain.Customer) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE customers
			  SET name = $1,
				  email = $2,
				  phone = $3,
				  address = $4,
				  company = $5
			  WHERE id = $6`

	_, err := querier.ExecContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		nullString(customer.Phone),
		nullString(customer.Address),
		nullString(customer.Company),
		customer.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return customerDomain.ErrCustomerEmailAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update customer")
	}
	return nil
}

// Get retrieves a customer by ID.
func (p *PostgreSQLCustomerRepository) Get(ctx context.Context, customerID int64) (*customerDomain.Customer, error) {
	return p.getByField(ctx, "id = $1", customerID)
}

// GetByEmail retrieves a customer by email.
func (p *PostgreSQLCustomerRepository) GetByEmail(ctx context.Context, email string) (*customerDomain.Customer, error) {
	return p.getByField(ctx, "email = $1", email)
}

func (p *PostgreSQLCustomerRepository) getByField(
	ctx context.Context,
	condition string,
	value any,
) (*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, phone, address, company, created_at
			  FROM customers WHERE ` + condition

	var customer customerDomain.Customer
	var phone, address, company sql.NullString

	err := querier.QueryRowContext(ctx, query, value).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&phone,
		&address,
		&company,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerDomain.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get customer")
	}

	customer.Phone = phone.String
	customer.Address = address.String
	customer.Company = company.String
	return &customer, nil
}

// List retrieves customers ordered by ID with pagination support.
func (p *PostgreSQLCustomerRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, phone, address, company, created_at
			  FROM customers ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customers")
	}
	defer rows.Close()

	customers := []*customerDomain.Customer{}
	for rows.Next() {
		var customer customerDomain.Customer
		var phone, address, company sql.NullString

		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&phone,
			&address,
			&company,
			&customer.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan customer")
		}

		customer.Phone = phone.String
		customer.Address = address.String
		customer.Company = company.String
		customers = append(customers, &customer)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate customers")
	}

	return customers, nil
}

// Delete removes a customer by ID.
func (p *PostgreSQLCustomerRepository) Delete(ctx context.Context, customerID int64) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, customerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete customer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete customer")
	}
	if affected == 0 {
		return customerDomain.ErrCustomerNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation reports whether err is a unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

// nullString converts an empty string to a SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NewPostgreSQLCustomerRepository creates a new PostgreSQL customer repository.
func NewPostgreSQLCustomerRepository(db *sql.DB) *PostgreSQLCustomerRepository {
	return &PostgreSQLCustomerRepository{db: db}
}
