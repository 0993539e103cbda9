package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	customerDomain "github.com/allisson/inventory/internal/customer/domain"
	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
)

// mysqlDuplicateEntry is the MySQL error number for duplicate key violations.
const mysqlDuplicateEntry = 1062

// MySQLCustomerRepository implements customer persistence for MySQL.
type MySQLCustomerRepository struct {
	db *sql.DB
}

// Create inserts a new customer and populates its generated ID.
func (m *MySQLCustomerRepository) Create(ctx context.Context, customer *customerDomain.Customer) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO customers (name, email, phone, address, company, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		nullString(customer.Phone),
		nullString(customer.Address),
		nullString(customer.Company),
		customer.CreatedAt,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return customerDomain.ErrCustomerEmailAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create customer")
	}

	customerID, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get customer id")
	}
	customer.ID = customerID
	return nil
}

// Update modifies an existing customer.
func (m *MySQLCustomerRepository) Update(ctx context.Context, customer *customerDomain.Customer) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE customers
			  SET name = ?,
				  email = ?,
				  phone = ?,
				  address = ?,
				  company = ?
			  WHERE id = ?`

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
		if isMySQLDuplicateEntry(err) {
			return customerDomain.ErrCustomerEmailAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update customer")
	}
	return nil
}

// Get retrieves a customer by ID.
func (m *MySQLCustomerRepository) Get(ctx context.Context, customerID int64) (*customerDomain.Customer, error) {
	return m.getByField(ctx, "id = ?", customerID)
}

// GetByEmail retrieves a customer by email.
func (m *MySQLCustomerRepository) GetByEmail(ctx context.Context, email string) (*customerDomain.Customer, error) {
	return m.getByField(ctx, "email = ?", email)
}

func (m *MySQLCustomerRepository) getByField(
	ctx context.Context,
	condition string,
	value any,
) (*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLCustomerRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, phone, address, company, created_at
			  FROM customers ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
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
func (m *MySQLCustomerRepository) Delete(ctx context.Context, customerID int64) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, customerID)
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

// isMySQLDuplicateEntry reports whether err is a duplicate key violation.
func isMySQLDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// NewMySQLCustomerRepository creates a new MySQL customer repository.
func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}
