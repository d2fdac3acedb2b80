package store

import (
	"context"

	"github.com/phrazzld/tasklist/internal/domain"
)

// UserStore persists user profile records, keyed by the identity provider's user ID.
type UserStore interface {
	// Save writes the profile for user.ID. The backend may replace
	// CreatedAt with its own timestamp.
	Save(ctx context.Context, user *domain.User) error

	// GetByID retrieves a profile by user ID.
	// Returns ErrUserNotFound if the profile does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
