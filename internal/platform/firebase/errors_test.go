package firebase

import (
	"errors"
	"testing"

	"github.com/phrazzld/tasklist/internal/store"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapFirestoreError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		notFound error
		wantIs   error
	}{
		{"not found uses caller sentinel", status.Error(codes.NotFound, "no document"), store.ErrTaskNotFound, store.ErrTaskNotFound},
		{"not found default", status.Error(codes.NotFound, "no document"), nil, store.ErrNotFound},
		{"already exists", status.Error(codes.AlreadyExists, "exists"), nil, store.ErrDuplicate},
		{"invalid argument", status.Error(codes.InvalidArgument, "bad path"), nil, store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, mapFirestoreError("task", "get", tt.err, tt.notFound), tt.wantIs)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, mapFirestoreError("task", "get", nil, nil))
	})

	t.Run("unavailable is a store error", func(t *testing.T) {
		raw := status.Error(codes.Unavailable, "connection reset")
		err := mapFirestoreError("task", "list", raw, nil)

		var storeErr *store.StoreError
		assert.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "list", storeErr.Operation)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestMapAuthError_Unclassified(t *testing.T) {
	t.Parallel()

	assert.NoError(t, mapAuthError("create", nil))

	err := mapAuthError("lookup", errors.New("unexpected"))
	var storeErr *store.StoreError
	assert.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "account", storeErr.Entity)
}
