package firebase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/phrazzld/tasklist/internal/config"
	"google.golang.org/api/option"
)

// Emulator environment variables recognised by the Admin SDK.
const (
	FirestoreEmulatorEnv = "FIRESTORE_EMULATOR_HOST"
	AuthEmulatorEnv      = "FIREBASE_AUTH_EMULATOR_HOST"
)

// ErrCredentialsNotFound indicates the service-account file does not exist.
var ErrCredentialsNotFound = errors.New("firebase credentials file not found")

// Clients holds the SDK clients shared by the stores of this package.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// usingEmulators reports whether both emulator hosts are configured.
func usingEmulators() bool {
	return os.Getenv(FirestoreEmulatorEnv) != "" && os.Getenv(AuthEmulatorEnv) != ""
}

// Open initializes the Firebase app from cfg and returns its Auth and
// Firestore clients.
func Open(ctx context.Context, cfg config.FirebaseConfig, logger *slog.Logger) (*Clients, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var opts []option.ClientOption
	if usingEmulators() {
		logger.Info("using firebase emulators",
			slog.String("firestore", os.Getenv(FirestoreEmulatorEnv)),
			slog.String("auth", os.Getenv(AuthEmulatorEnv)))
	} else {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, cfg.CredentialsFile)
			}
			return nil, fmt.Errorf("failed to read firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var appConfig *fb.Config
	if cfg.ProjectID != "" {
		appConfig = &fb.Config{ProjectID: cfg.ProjectID}
	}

	app, err := fb.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}

	logger.Info("firebase initialized", slog.String("project_id", cfg.ProjectID))
	return &Clients{Auth: authClient, Firestore: fsClient}, nil
}

// Close releases the Firestore connection.
func (c *Clients) Close() error {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Close()
}
