// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	userDTO "github.com/allisson/inventory/internal/user/http/dto"
)

// LoginResponse contains the result of a successful login.
type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresAt   time.Time            `json:"expires_at"`
	User        userDTO.UserResponse `json:"user"`
}

// MapLoginToResponse converts a login result to an API response.
func MapLoginToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   output.ExpiresAt,
		User:        userDTO.MapUserToResponse(output.User),
	}
}

// LogoutResponse acknowledges a logout request.
// Tokens are stateless, so logout is a client-side discard; the server only
// confirms the request.
type LogoutResponse struct {
	Message string `json:"message"`
}
