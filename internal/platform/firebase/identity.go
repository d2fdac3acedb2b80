package firebase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/store"
)

// minPasswordLength is Firebase Authentication's password rule. The SDK
// enforces it client-side with an unclassified error, so it is checked here
// first to report it as a rejected credential.
const minPasswordLength = 6

// The SDK also rejects malformed emails client-side without a typed error.
var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// AuthClient is the subset of *auth.Client used by IdentityProvider.
type AuthClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
}

// IdentityProvider implements store.IdentityProvider on Firebase
// Authentication.
type IdentityProvider struct {
	client AuthClient
	logger *slog.Logger
}

// NewIdentityProvider creates an IdentityProvider. If logger is nil, a
// default logger will be used.
func NewIdentityProvider(client AuthClient, logger *slog.Logger) *IdentityProvider {
	if client == nil {
		panic("auth client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityProvider{
		client: client,
		logger: logger.With(slog.String("component", "firebase_identity")),
	}
}

var _ store.IdentityProvider = (*IdentityProvider)(nil)

// CreateAccount implements store.IdentityProvider.CreateAccount
func (p *IdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	if !validEmail(email) {
		return "", fmt.Errorf("%w: %q is not a valid email address", store.ErrInvalidEntity, email)
	}
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters long",
			store.ErrInvalidEntity, minPasswordLength)
	}

	record, err := p.client.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		mapped := mapAuthError("create", err)
		if store.IsDuplicateError(mapped) {
			log.Debug("firebase account already exists")
		} else {
			log.Error("firebase create user failed", slog.String("error", err.Error()))
		}
		return "", mapped
	}

	log.Info("firebase account created", slog.String("user_id", record.UID))
	return record.UID, nil
}

// LookupByEmail implements store.IdentityProvider.LookupByEmail
func (p *IdentityProvider) LookupByEmail(ctx context.Context, email string) (string, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return "", store.ErrUserNotFound
	}

	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		mapped := mapAuthError("lookup", err)
		if !store.IsNotFoundError(mapped) {
			log.Error("firebase user lookup failed", slog.String("error", err.Error()))
		}
		return "", mapped
	}
	return record.UID, nil
}

// VerifyPassword implements store.IdentityProvider.VerifyPassword. The Admin
// SDK has no password check, so it always fails with store.ErrUnsupported.
func (p *IdentityProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	return "", fmt.Errorf("%w: firebase admin sdk cannot verify passwords", store.ErrUnsupported)
}
