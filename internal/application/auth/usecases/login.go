package usecases

import (
	"context"
	"fmt"
	"time"

	"authpanel/internal/domain/user"
	apperrors "authpanel/internal/shared/errors"
	"authpanel/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User         *user.User
	SessionToken string
	MaxAge       int
}

// LoginUseCase authenticates a username/password pair and opens a session.
type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	sessionIssuer  SessionIssuer
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	sessionIssuer SessionIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		sessionIssuer:  sessionIssuer,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Generic error whether the username or the password is wrong.
	if existingUser == nil {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}
	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	// Stamping the login time is non-critical.
	existingUser.RecordLogin(time.Now())
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", existingUser.ID(), "error", err)
	}

	token, err := uc.sessionIssuer.Generate(existingUser.ID(), existingUser.Username(), existingUser.IsStaff(), existingUser.IsSuperuser())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID(), "username", existingUser.Username())

	return &LoginResult{
		User:         existingUser,
		SessionToken: token,
		MaxAge:       uc.sessionIssuer.MaxAge(),
	}, nil
}
