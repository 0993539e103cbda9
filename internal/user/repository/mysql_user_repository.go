package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/allisson/inventory/internal/database"
	apperrors "github.com/allisson/inventory/internal/errors"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// mysqlDuplicateEntry is the MySQL error number for duplicate key violations.
const mysqlDuplicateEntry = 1062

// MySQLUserRepository implements user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new user and populates its generated ID.
func (m *MySQLUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (username, email, password_hash, full_name, is_active, role, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.Email,
		user.PasswordHash,
		nullString(user.FullName),
		user.IsActive,
		user.Role,
		user.CreatedAt,
	)
	if err != nil {
		if conflictErr := mapMySQLUserConflict(err); conflictErr != nil {
			return conflictErr
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get user id")
	}
	user.ID = userID
	return nil
}

// Update modifies an existing user.
func (m *MySQLUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users
			  SET username = ?,
				  email = ?,
				  password_hash = ?,
				  full_name = ?,
				  is_active = ?,
				  role = ?
			  WHERE id = ?`

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
		if conflictErr := mapMySQLUserConflict(err); conflictErr != nil {
			return conflictErr
		}
		return apperrors.Wrap(err, "failed to update user")
	}
	return nil
}

// Get retrieves a user by ID.
func (m *MySQLUserRepository) Get(ctx context.Context, userID int64) (*userDomain.User, error) {
	return m.getByField(ctx, "id = ?", userID)
}

// GetByUsername retrieves a user by username.
func (m *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	return m.getByField(ctx, "username = ?", username)
}

// GetByEmail retrieves a user by email.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return m.getByField(ctx, "email = ?", email)
}

func (m *MySQLUserRepository) getByField(
	ctx context.Context,
	condition string,
	value any,
) (*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLUserRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*userDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, email, password_hash, full_name, is_active, role, created_at
			  FROM users ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
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
func (m *MySQLUserRepository) Delete(ctx context.Context, userID int64) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
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

// mapMySQLUserConflict translates duplicate key violations on the users table
// into domain conflict errors. Returns nil for any other error.
func mapMySQLUserConflict(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlDuplicateEntry {
		return nil
	}
	if strings.Contains(mysqlErr.Message, "email") {
		return userDomain.ErrEmailAlreadyExists
	}
	return userDomain.ErrUsernameAlreadyExists
}

// NewMySQLUserRepository creates a new MySQL user repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
