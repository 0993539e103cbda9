// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	"github.com/allisson/inventory/internal/auth/http/dto"
	authUseCase "github.com/allisson/inventory/internal/auth/usecase"
	apperrors "github.com/allisson/inventory/internal/errors"
	"github.com/allisson/inventory/internal/httputil"
	userDTO "github.com/allisson/inventory/internal/user/http/dto"
	customValidation "github.com/allisson/inventory/internal/validation"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new authentication handler with required dependencies.
func NewAuthHandler(useCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: useCase,
		logger:      logger,
	}
}

// LoginHandler verifies credentials and returns a signed access token.
// POST /v1/auth/login - Returns 200 OK with the token and user data.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authDomain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginToResponse(output))
}

// MeHandler returns the authenticated user.
// GET /v1/auth/me - Requires authentication. Returns 200 OK with the user data.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	user, ok := GetUser(c.Request.Context())
	if !ok || user == nil {
		// Should never happen behind the authentication middleware.
		h.logger.Error("me handler: no authenticated user in context")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, userDTO.MapUserToResponse(user))
}

// LogoutHandler acknowledges a logout request.
// POST /v1/auth/logout - Returns 200 OK. Access tokens are stateless and
// remain cryptographically valid until expiry; the client discards its copy.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LogoutResponse{Message: "successfully logged out"})
}
