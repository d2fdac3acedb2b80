package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/store"
)

// AuthService creates accounts and signs users in.
type AuthService interface {
	// Register creates an account and its profile record and returns the new
	// user ID. It does not sign the user in.
	Register(ctx context.Context, email, password string) (string, error)

	// SignIn returns the user ID of the account registered under email.
	SignIn(ctx context.Context, email, password string) (string, error)
}

// AuthServiceImpl implements the AuthService interface
type AuthServiceImpl struct {
	identity       store.IdentityProvider
	users          store.UserStore
	verifyPassword bool
	logger         *slog.Logger
	now            func() time.Time
}

// NewAuthService creates a new AuthService.
//
// With verifyPassword false, sign-in only checks that an account exists for
// the email and accepts any password. With verifyPassword true the identity
// provider must check the password.
func NewAuthService(
	identity store.IdentityProvider,
	users store.UserStore,
	verifyPassword bool,
	logger *slog.Logger,
) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServiceImpl{
		identity:       identity,
		users:          users,
		verifyPassword: verifyPassword,
		logger:         logger.With("component", "auth_service"),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the account with the identity provider, then writes the
// profile record. If the profile write fails the account still exists; the
// user ID is returned together with the error.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	creds, err := domain.NewCredentials(email, password)
	if err != nil {
		return "", err
	}

	userID, err := s.identity.CreateAccount(ctx, creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			log.Debug("attempted to register existing email", "email", creds.Email)
			return "", fmt.Errorf("%w: email is already registered", ErrAuth)
		case errors.Is(err, store.ErrInvalidEntity):
			log.Debug("identity provider rejected credentials", "email", creds.Email, "error", err)
			return "", fmt.Errorf("%w: %w", ErrAuth, err)
		default:
			log.Error("failed to create account", "email", creds.Email, "error", err)
			return "", fmt.Errorf("%w: failed to create account: %w", ErrBackend, err)
		}
	}

	profile := &domain.User{
		ID:        userID,
		Email:     creds.Email,
		CreatedAt: s.now(),
	}
	if err := s.users.Save(ctx, profile); err != nil {
		log.Error("account created but profile not saved",
			"user_id", userID,
			"error", err)
		return userID, fmt.Errorf("%w: account created but profile was not saved: %w", ErrBackend, err)
	}

	log.Info("user registered", "user_id", userID)
	return userID, nil
}

// SignIn resolves email to a user ID. See NewAuthService for how the
// password is treated.
func (s *AuthServiceImpl) SignIn(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.NewValidationError("email", "cannot be empty", domain.ErrEmptyEmail)
	}

	var (
		userID string
		err    error
	)
	if s.verifyPassword {
		userID, err = s.identity.VerifyPassword(ctx, email, password)
	} else {
		userID, err = s.identity.LookupByEmail(ctx, email)
	}

	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug("sign-in for unknown email", "email", email)
			if s.verifyPassword {
				return "", fmt.Errorf("%w: invalid email or password", ErrAuth)
			}
			return "", fmt.Errorf("%w: no account is registered for this email", ErrAuth)
		case errors.Is(err, store.ErrInvalidCredentials):
			log.Debug("sign-in with wrong password", "email", email)
			return "", fmt.Errorf("%w: invalid email or password", ErrAuth)
		default:
			log.Error("failed to sign in", "email", email, "error", err)
			return "", fmt.Errorf("%w: failed to sign in: %w", ErrBackend, err)
		}
	}

	log.Info("user signed in", "user_id", userID, "password_verified", s.verifyPassword)
	return userID, nil
}
