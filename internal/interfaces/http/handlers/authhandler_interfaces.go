package handlers

import (
	"context"

	authUsecases "authpanel/internal/application/auth/usecases"
)

// SignupExecutor executes the signup use case.
type SignupExecutor interface {
	Execute(ctx context.Context, cmd authUsecases.SignupCommand) (*authUsecases.SignupResult, error)
}

// LoginExecutor executes the login use case.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error)
}
