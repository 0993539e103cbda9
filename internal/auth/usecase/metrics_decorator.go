package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	"github.com/allisson/inventory/internal/metrics"
	userDomain "github.com/allisson/inventory/internal/user/domain"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// Introspect records metrics for token introspection operations.
func (a *authUseCaseWithMetrics) Introspect(
	ctx context.Context,
	token string,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := a.next.Introspect(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "introspect", status)
	a.metrics.RecordDuration(ctx, "auth", "introspect", time.Since(start), status)

	return user, err
}
