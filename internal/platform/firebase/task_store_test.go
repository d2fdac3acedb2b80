package firebase_test

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/firebase"
	"github.com/phrazzld/tasklist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An emulator address makes the client skip credentials. Nothing is dialed
// until a request is sent, and these cases never send one.
func newOfflineTaskStore(t *testing.T) *firebase.TaskStore {
	t.Helper()
	t.Setenv(firebase.FirestoreEmulatorEnv, "127.0.0.1:1")

	client, err := firestore.NewClient(context.Background(), "demo-tasklist")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return firebase.NewTaskStore(client, nil)
}

func TestTaskStore_IDsThatAreNotDocumentsAreNotFound(t *testing.T) {
	s := newOfflineTaskStore(t)
	ctx := context.Background()

	for _, id := range []string{"", "abc/def", "/abc", "abc/", ".", ".."} {
		t.Run(id, func(t *testing.T) {
			_, err := s.GetByID(ctx, id)
			assert.ErrorIs(t, err, store.ErrTaskNotFound)

			assert.ErrorIs(t, s.UpdateField(ctx, id, domain.TaskFieldStatus, "Completed"), store.ErrTaskNotFound)
			assert.ErrorIs(t, s.Delete(ctx, id), store.ErrTaskNotFound)
		})
	}
}
