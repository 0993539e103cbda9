// Package domain defines the core entities for authentication.
package domain

import (
	"time"

	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// LoginInput contains the credentials submitted to the login operation.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the result of a successful login: a signed access
// token, its expiration, and the authenticated user.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *userDomain.User
}
