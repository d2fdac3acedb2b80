// Package backend selects and initializes the identity provider and document
// store named by the configuration and builds the services on top of them.
package backend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasklist/internal/config"
	"github.com/phrazzld/tasklist/internal/platform/firebase"
	"github.com/phrazzld/tasklist/internal/platform/postgres"
	"github.com/phrazzld/tasklist/internal/service"
	"github.com/phrazzld/tasklist/internal/service/auth"
	"github.com/phrazzld/tasklist/internal/store"
)

// ErrInit indicates the backend could not be initialized. The program cannot
// continue without one.
var ErrInit = errors.New("backend initialization failed")

// Stores groups the store implementations of one backend.
type Stores struct {
	Identity store.IdentityProvider
	Users    store.UserStore
	Tasks    store.TaskStore
}

// Backend is an initialized backend together with the services using it.
type Backend struct {
	Kind  string
	Auth  service.AuthService
	Tasks service.TaskService

	closer func() error
}

// New builds the services over already constructed stores.
func New(kind string, stores Stores, verifyPassword bool, logger *slog.Logger, closer func() error) *Backend {
	return &Backend{
		Kind:   kind,
		Auth:   service.NewAuthService(stores.Identity, stores.Users, verifyPassword, logger),
		Tasks:  service.NewTaskService(stores.Tasks, logger),
		closer: closer,
	}
}

// Open initializes the backend selected by cfg.Backend.Kind. Every failure
// wraps ErrInit.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("backend", cfg.Backend.Kind))

	switch cfg.Backend.Kind {
	case config.BackendFirebase:
		clients, err := firebase.Open(ctx, cfg.Firebase, log)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInit, err)
		}
		stores := Stores{
			Identity: firebase.NewIdentityProvider(clients.Auth, log),
			Users:    firebase.NewUserStore(clients.Firestore, log),
			Tasks:    firebase.NewTaskStore(clients.Firestore, log),
		}
		return New(cfg.Backend.Kind, stores, cfg.Auth.VerifyPassword, log, clients.Close), nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.Database.URL, log)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInit, err)
		}
		return New(cfg.Backend.Kind, PostgresStores(db, log), cfg.Auth.VerifyPassword, log, db.Close), nil

	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInit, cfg.Backend.Kind)
	}
}

// PostgresStores builds the PostgreSQL stores over db.
func PostgresStores(db *sql.DB, logger *slog.Logger) Stores {
	return Stores{
		Identity: postgres.NewPostgresIdentityStore(db, auth.NewBcrypt(0), logger),
		Users:    postgres.NewPostgresUserStore(db, logger),
		Tasks:    postgres.NewPostgresTaskStore(db, logger),
	}
}

// Close releases the backend's connections.
func (b *Backend) Close() error {
	if b == nil || b.closer == nil {
		return nil
	}
	return b.closer()
}
