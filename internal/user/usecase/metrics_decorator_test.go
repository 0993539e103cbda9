package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

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

// mockUserUseCase is a mock implementation of UserUseCase for decorator tests.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(
	ctx context.Context,
	input *userDomain.CreateUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Update(
	ctx context.Context,
	userID int64,
	input *userDomain.UpdateUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Get(ctx context.Context, userID int64) (*userDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestUserUseCaseWithMetrics(t *testing.T) {
	mockNext := &mockUserUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := NewUserUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("Create success", func(t *testing.T) {
		input := &userDomain.CreateUserInput{Username: "johndoe"}
		user := &userDomain.User{ID: 1, Username: "johndoe"}

		mockNext.On("Create", ctx, input).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_create", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_create", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Create error", func(t *testing.T) {
		input := &userDomain.CreateUserInput{Username: "johndoe"}

		mockNext.On("Create", ctx, input).Return(nil, userDomain.ErrUsernameAlreadyExists).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_create", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_create", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Create(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Get success", func(t *testing.T) {
		user := &userDomain.User{ID: 1}

		mockNext.On("Get", ctx, int64(1)).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_get", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_get", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, user, res)
	})

	t.Run("List success", func(t *testing.T) {
		users := []*userDomain.User{{ID: 1}}

		mockNext.On("List", ctx, 0, 50).Return(users, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_list", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_list", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.List(ctx, 0, 50)
		assert.NoError(t, err)
		assert.Equal(t, users, res)
	})

	t.Run("Update success", func(t *testing.T) {
		input := &userDomain.UpdateUserInput{}
		user := &userDomain.User{ID: 1}

		mockNext.On("Update", ctx, int64(1), input).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_update", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_update", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Update(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, user, res)
	})

	t.Run("Delete error", func(t *testing.T) {
		mockNext.On("Delete", ctx, int64(404)).Return(userDomain.ErrUserNotFound).Once()
		mockMetrics.On("RecordOperation", ctx, "users", "user_delete", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "users", "user_delete", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		err := uc.Delete(ctx, 404)
		assert.ErrorIs(t, err, userDomain.ErrUserNotFound)
	})
}
