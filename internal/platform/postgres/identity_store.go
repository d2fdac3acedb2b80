package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/service/auth"
	"github.com/phrazzld/tasklist/internal/store"
)

// Passwords is the hashing and verification pair the identity store needs.
type Passwords interface {
	auth.PasswordHasher
	auth.PasswordVerifier
}

// PostgresIdentityStore implements store.IdentityProvider on the accounts
// table. Emails are compared case-insensitively.
type PostgresIdentityStore struct {
	db        store.DBTX
	passwords Passwords
	logger    *slog.Logger
}

// NewPostgresIdentityStore creates a new identity store. If passwords is nil
// bcrypt with the default cost is used; if logger is nil, slog.Default().
func NewPostgresIdentityStore(db store.DBTX, passwords Passwords, logger *slog.Logger) *PostgresIdentityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if passwords == nil {
		passwords = auth.NewBcrypt(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresIdentityStore{
		db:        db,
		passwords: passwords,
		logger:    logger.With(slog.String("component", "identity_store")),
	}
}

var _ store.IdentityProvider = (*PostgresIdentityStore)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount implements store.IdentityProvider.CreateAccount
func (s *PostgresIdentityStore) CreateAccount(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	email = normalizeEmail(email)

	hash, err := s.passwords.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyPassword) || errors.Is(err, auth.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
		return "", store.NewStoreError("account", "create", "failed to hash password", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO accounts (id, email, password_hash)
		VALUES ($1, $2, $3)
	`
	if _, err := s.db.ExecContext(ctx, query, id, email, hash); err != nil {
		if IsUniqueViolation(err) {
			log.Debug("account email already exists")
			return "", store.ErrEmailExists
		}
		log.Error("failed to create account", slog.String("error", err.Error()))
		return "", store.NewStoreError("account", "create", "insert failed", MapError(err))
	}

	log.Info("account created", slog.String("user_id", id))
	return id, nil
}

// LookupByEmail implements store.IdentityProvider.LookupByEmail
func (s *PostgresIdentityStore) LookupByEmail(ctx context.Context, email string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM accounts WHERE email = $1`, normalizeEmail(email)).Scan(&id)
	if err != nil {
		return "", s.mapLookupError(ctx, err)
	}
	return id, nil
}

// VerifyPassword implements store.IdentityProvider.VerifyPassword
func (s *PostgresIdentityStore) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id, hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM accounts WHERE email = $1`,
		normalizeEmail(email),
	).Scan(&id, &hash)
	if err != nil {
		return "", s.mapLookupError(ctx, err)
	}

	if err := s.passwords.Compare(hash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("password mismatch", slog.String("user_id", id))
			return "", store.ErrInvalidCredentials
		}
		log.Error("stored password hash is unusable",
			slog.String("user_id", id),
			slog.String("error", err.Error()))
		return "", store.NewStoreError("account", "verify", "password check failed", err)
	}
	return id, nil
}

func (s *PostgresIdentityStore) mapLookupError(ctx context.Context, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrUserNotFound
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("failed to look up account",
		slog.String("error", err.Error()))
	return store.NewStoreError("account", "lookup", "query failed", MapError(err))
}
