package mocks

import (
	"context"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	SaveFn    func(ctx context.Context, user *domain.User) error
	GetByIDFn func(ctx context.Context, id string) (*domain.User, error)

	// Users holds saved profiles keyed by user ID.
	Users     map[string]*domain.User
	SaveError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Save implements the UserStore interface
func (m *MockUserStore) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, user)
	}
	if m.SaveError != nil {
		return m.SaveError
	}
	if err := user.Validate(); err != nil {
		return err
	}
	saved := *user
	m.Users[user.ID] = &saved
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	found := *user
	return &found, nil
}
