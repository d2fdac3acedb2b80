package firebase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/store"
)

// UsersCollection holds one profile document per user, keyed by user ID.
const UsersCollection = "users"

// UserStore implements store.UserStore on Firestore.
type UserStore struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewUserStore creates a Firestore-backed UserStore.
func NewUserStore(client *firestore.Client, logger *slog.Logger) *UserStore {
	if client == nil {
		panic("firestore client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		client: client,
		logger: logger.With(slog.String("component", "firestore_user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// userDocument builds the profile document. created_at is set by the server.
func userDocument(user *domain.User) map[string]interface{} {
	return map[string]interface{}{
		"email":      user.Email,
		"created_at": firestore.ServerTimestamp,
	}
}

// Save implements store.UserStore.Save
func (s *UserStore) Save(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return err
	}

	_, err := s.client.Collection(UsersCollection).Doc(user.ID).Set(ctx, userDocument(user))
	if err != nil {
		log.Error("failed to save user profile",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
		return mapFirestoreError("user", "save", err, nil)
	}
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, store.ErrUserNotFound
	}

	snap, err := s.client.Collection(UsersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapFirestoreError("user", "get", err, store.ErrUserNotFound)
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, store.NewStoreError("user", "get", "malformed document", err)
	}
	user.ID = snap.Ref.ID
	return &user, nil
}
