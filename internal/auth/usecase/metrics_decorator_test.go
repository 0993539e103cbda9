package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockAuthUseCase is a mock implementation of AuthUseCase for decorator tests.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) Introspect(ctx context.Context, token string) (*userDomain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	mockNext := &mockAuthUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		input := &authDomain.LoginInput{Username: "johndoe", Password: "password123"}
		output := &authDomain.LoginOutput{AccessToken: "token"}

		mockNext.On("Login", ctx, input).Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		input := &authDomain.LoginInput{Username: "johndoe", Password: "wrong"}

		mockNext.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Introspect success", func(t *testing.T) {
		user := &userDomain.User{ID: 7, Username: "johndoe", IsActive: true}

		mockNext.On("Introspect", ctx, "token").Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "introspect", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "introspect", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Introspect(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Introspect error", func(t *testing.T) {
		expectedErr := errors.New("error")

		mockNext.On("Introspect", ctx, "bad-token").Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "introspect", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "introspect", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Introspect(ctx, "bad-token")
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
