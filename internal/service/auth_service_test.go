package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/mocks"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/service"
	"github.com/phrazzld/tasklist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T, verify bool) (service.AuthService, *mocks.MockIdentityProvider, *mocks.MockUserStore) {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	identity := mocks.NewMockIdentityProvider()
	users := mocks.NewMockUserStore()
	return service.NewAuthService(identity, users, verify, log), identity, users
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and profile", func(t *testing.T) {
		svc, identity, users := newAuthFixture(t, false)

		userID, err := svc.Register(ctx, "  a@x.com ", "secret1")
		require.NoError(t, err)
		require.NotEmpty(t, userID)

		require.Contains(t, identity.Accounts, "a@x.com")
		profile, ok := users.Users[userID]
		require.True(t, ok, "profile should be saved under the new user ID")
		assert.Equal(t, "a@x.com", profile.Email)
		assert.False(t, profile.CreatedAt.IsZero())
	})

	t.Run("duplicate email is an auth error", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t, false)

		_, err := svc.Register(ctx, "a@x.com", "secret1")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "a@x.com", "other-pass")
		assert.ErrorIs(t, err, service.ErrAuth)
		assert.Equal(t, service.KindAuth, service.KindOf(err))
	})

	t.Run("provider password rule is an auth error", func(t *testing.T) {
		svc, identity, users := newAuthFixture(t, false)
		identity.MinPasswordLength = 6

		_, err := svc.Register(ctx, "a@x.com", "123")
		assert.ErrorIs(t, err, service.ErrAuth)
		assert.Empty(t, users.Users)
	})

	t.Run("empty input is rejected before any backend call", func(t *testing.T) {
		identity := new(mocks.TestifyMockIdentityProvider)
		users := new(mocks.TestifyMockUserStore)
		svc := service.NewAuthService(identity, users, false, nil)

		_, err := svc.Register(ctx, "   ", "secret1")
		assert.ErrorIs(t, err, domain.ErrEmptyEmail)
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.Register(ctx, "a@x.com", "")
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)

		identity.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("provider outage is a backend error", func(t *testing.T) {
		identity := new(mocks.TestifyMockIdentityProvider)
		users := new(mocks.TestifyMockUserStore)
		identity.On("CreateAccount", mock.Anything, "a@x.com", "secret1").
			Return("", errors.New("connection refused"))
		svc := service.NewAuthService(identity, users, false, nil)

		_, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.ErrorIs(t, err, service.ErrBackend)
		identity.AssertExpectations(t)
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("profile failure keeps the account", func(t *testing.T) {
		identity := new(mocks.TestifyMockIdentityProvider)
		users := new(mocks.TestifyMockUserStore)
		identity.On("CreateAccount", mock.Anything, "a@x.com", "secret1").Return("uid-1", nil)
		users.On("Save", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "uid-1" && u.Email == "a@x.com"
		})).Return(errors.New("permission denied"))
		svc := service.NewAuthService(identity, users, false, nil)

		userID, err := svc.Register(ctx, "a@x.com", "secret1")
		assert.Equal(t, "uid-1", userID)
		assert.ErrorIs(t, err, service.ErrBackend)
		identity.AssertExpectations(t)
		users.AssertExpectations(t)
	})
}

func TestAuthService_SignIn_LookupOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture(t, false)

	registered, err := svc.Register(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	t.Run("any password is accepted for a registered email", func(t *testing.T) {
		for _, pw := range []string{"secret1", "wrong", ""} {
			userID, err := svc.SignIn(ctx, "a@x.com", pw)
			require.NoError(t, err, "password %q", pw)
			assert.Equal(t, registered, userID)
		}
	})

	t.Run("unknown email is an auth error", func(t *testing.T) {
		_, err := svc.SignIn(ctx, "nobody@x.com", "secret1")
		assert.ErrorIs(t, err, service.ErrAuth)
	})

	t.Run("empty email is a validation error", func(t *testing.T) {
		_, err := svc.SignIn(ctx, " ", "secret1")
		assert.Equal(t, service.KindValidation, service.KindOf(err))
	})
}

func TestAuthService_SignIn_VerifyPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture(t, true)

	registered, err := svc.Register(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	userID, err := svc.SignIn(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered, userID)

	_, err = svc.SignIn(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, service.ErrAuth)

	_, err = svc.SignIn(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrAuth)
}

func TestAuthService_SignIn_BackendFailure(t *testing.T) {
	identity := new(mocks.TestifyMockIdentityProvider)
	identity.On("LookupByEmail", mock.Anything, "a@x.com").
		Return("", store.NewStoreError("user", "lookup", "request failed", errors.New("deadline exceeded")))
	svc := service.NewAuthService(identity, new(mocks.TestifyMockUserStore), false, nil)

	_, err := svc.SignIn(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, service.ErrBackend)
	identity.AssertExpectations(t)
}
