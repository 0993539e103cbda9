// Package repository implements data persistence for user accounts.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). Unique index violations are translated into the domain
// conflict errors so races that slip past the use case pre-checks still
// surface as conflicts instead of opaque driver errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user and populates its generated ID.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (username, email, password_hash, full_name, is_active, role, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		nullString(user.FullName),
		user.IsActive,
		user.Role,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if conflictErr := mapPostgreSQLUserConflict(err); conflictErr != nil {
			return conflictErr
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Update modifies an existing user.
func (p *PostgreSQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users
			  SET username = $1,
				  email = $2,
				  password_hash = $3,
				  full_name = $4,
				  is_active = $5,
				  role = $6
			  WHERE id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		nullString(user.FullName),
		user.IsActive,
		user.Role,
		user.ID,
	)
	if err != nil {
		if conflictErr := mapPostgreSQLUserConflict(err); conflictErr != nil {
			return conflictErr
		}
		return apperrors.Wrap(err, "failed to update user")
	}
	return nil
}

// Get retrieves a user by ID.
func (p *PostgreSQLUserRepository) Get(ctx context.Context, userID int64) (*userDomain.User, error) {
	return p.getByField(ctx, "id = $1", userID)
}

// GetByUsername retrieves a user by username.
func (p *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	return p.getByField(ctx, "username = $1", username)
}

// GetByEmail retrieves a user by email.
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return p.getByField(ctx, "email = $1", email)
}

func (p *PostgreSQLUserRepository) getByField(
	ctx context.Context,
	condition string,
	value any,
) (*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, email, password_hash, full_name, is_active, role, created_at
			  FROM users WHERE ` + condition

	var user userDomain.User
	var fullName sql.NullString

	err := querier.QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&fullName,
		&user.IsActive,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	user.FullName = fullName.String
	return &user, nil
}

// List retrieves users ordered by ID with pagination support.
func (p *PostgreSQLUserRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, email, password_hash, full_name, is_active, role, created_at
			  FROM users ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := []*userDomain.User{}
	for rows.Next() {
		var user userDomain.User
		var fullName sql.NullString

		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&fullName,
			&user.IsActive,
			&user.Role,
			&user.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}

		user.FullName = fullName.String
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

// Delete removes a user by ID.
func (p *PostgreSQLUserRepository) Delete(ctx context.Context, userID int64) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	if affected == 0 {
		return userDomain.ErrUserNotFound
	}
	return nil
}

// mapPostgreSQLUserConflict translates unique violations on the users table
// into domain conflict errors. Returns nil for any other error.
func mapPostgreSQLUserConflict(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return nil
	}
	if strings.Contains(pqErr.Constraint, "email") {
		return userDomain.ErrEmailAlreadyExists
	}
	return userDomain.ErrUsernameAlreadyExists
}

// nullString converts an empty string to a SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NewPostgreSQLUserRepository creates a new PostgreSQL user repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
