// Package domain defines the core entities for user account management.
package domain

import (
	"time"
)

// Account roles. Role is an open string field; these constants cover the
// roles assigned by the API and the seed data.
const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User represents an account that can authenticate against the API.
// PasswordHash holds the SHA-256 hex digest of the password and is never
// serialized in API responses.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	IsActive     bool      `json:"is_active"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUserInput contains the parameters for creating a new user account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	IsActive bool
	Role     string
}

// UpdateUserInput contains the parameters for a partial user update.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	FullName *string
	IsActive *bool
	Role     *string
}
