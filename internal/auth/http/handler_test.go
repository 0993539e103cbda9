package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// MockAuthUseCase is a mock implementation of AuthUseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *MockAuthUseCase) Introspect(ctx context.Context, token string) (*userDomain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// setupAuthTestHandler creates a test auth handler with mocked dependencies.
func setupAuthTestHandler(t *testing.T) (*AuthHandler, *MockAuthUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockAuthUseCase := &MockAuthUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewAuthHandler(mockAuthUseCase, logger)

	return handler, mockAuthUseCase
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// activeUser returns an active user fixture for handler tests.
func activeUser() *userDomain.User {
	return &userDomain.User{
		ID:        7,
		Username:  "johndoe",
		Email:     "johndoe@example.com",
		FullName:  "John Doe",
		IsActive:  true,
		Role:      userDomain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
}
