package usecases

import (
	"context"
	"fmt"

	"authpanel/internal/domain/user"
	"authpanel/internal/infrastructure/email"
	apperrors "authpanel/internal/shared/errors"
	"authpanel/internal/shared/logger"
)

// SessionIssuer signs session tokens for freshly authenticated users.
type SessionIssuer interface {
	Generate(userID uint, username string, isStaff, isSuperuser bool) (string, error)
	MaxAge() int
}

type SignupCommand struct {
	Username string
	Email    string
	Password string
}

type SignupResult struct {
	User         *user.User
	SessionToken string
	MaxAge       int
}

// SignupUseCase registers a new user and signs them in.
type SignupUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	sessionIssuer  SessionIssuer
	emailService   email.Service
	logger         logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	sessionIssuer SessionIssuer,
	emailService email.Service,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		sessionIssuer:  sessionIssuer,
		emailService:   emailService,
		logger:         logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	newUser, err := user.NewUser(cmd.Username, cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, newUser.Username())
	if err != nil {
		uc.logger.Errorw("failed to check username availability", "error", err)
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("username is already taken")
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, newUser.Email())
	if err != nil {
		uc.logger.Errorw("failed to check email availability", "error", err)
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("email is already registered")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if apperrors.IsDuplicateError(err) {
			// Lost the race against a concurrent signup with the same identity.
			return nil, apperrors.NewConflictError("username or email is already taken")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Welcome email is best effort; signup never fails on delivery.
	if uc.emailService != nil {
		if err := uc.emailService.SendWelcomeEmail(newUser.Email(), newUser.Username()); err != nil {
			uc.logger.Warnw("failed to send welcome email", "user_id", newUser.ID(), "error", err)
		}
	}

	token, err := uc.sessionIssuer.Generate(newUser.ID(), newUser.Username(), newUser.IsStaff(), newUser.IsSuperuser())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "user_id", newUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("user signed up", "user_id", newUser.ID(), "username", newUser.Username())

	return &SignupResult{
		User:         newUser,
		SessionToken: token,
		MaxAge:       uc.sessionIssuer.MaxAge(),
	}, nil
}
