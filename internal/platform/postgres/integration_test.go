//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/postgres"
	"github.com/phrazzld/tasklist/internal/service/auth"
	"github.com/phrazzld/tasklist/internal/store"
	"github.com/phrazzld/tasklist/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPostgresBackend_Integration(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	identity := postgres.NewPostgresIdentityStore(db, auth.NewBcrypt(bcrypt.MinCost), nil)
	users := postgres.NewPostgresUserStore(db, nil)
	tasks := postgres.NewPostgresTaskStore(db, nil)

	uid, err := identity.CreateAccount(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = identity.CreateAccount(ctx, "A@X.com", "other")
	assert.ErrorIs(t, err, store.ErrEmailExists)

	found, err := identity.LookupByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uid, found)

	_, err = identity.VerifyPassword(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = identity.LookupByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	require.NoError(t, users.Save(ctx, &domain.User{ID: uid, Email: "a@x.com"}))
	profile, err := users.GetByID(ctx, uid)
	require.NoError(t, err)
	assert.False(t, profile.CreatedAt.IsZero())

	task, err := domain.NewTask(uid, "Buy milk", "2%, 1 gal")
	require.NoError(t, err)
	require.NoError(t, tasks.Create(ctx, task))

	list, err := tasks.ListByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *task, *list[0])

	require.NoError(t, tasks.UpdateField(ctx, task.ID, domain.TaskFieldStatus, "Completed"))
	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)
	assert.Equal(t, task.Description, got.Description)

	require.NoError(t, tasks.Delete(ctx, task.ID))
	assert.ErrorIs(t, tasks.Delete(ctx, task.ID), store.ErrTaskNotFound)

	_, err = tasks.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStore_RolledBackTransaction(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	uid, err := postgres.NewPostgresIdentityStore(db, auth.NewBcrypt(bcrypt.MinCost), nil).
		CreateAccount(ctx, "tx@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresUserStore(db, nil).Save(ctx, &domain.User{ID: uid, Email: "tx@x.com"}))

	task, err := domain.NewTask(uid, "Draft", "inside a transaction")
	require.NoError(t, err)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		txTasks := postgres.NewPostgresTaskStore(tx, nil)
		require.NoError(t, txTasks.Create(ctx, task))

		list, err := txTasks.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	list, err := postgres.NewPostgresTaskStore(db, nil).ListByUser(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTaskStore_AccountWithoutProfile(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	uid, err := postgres.NewPostgresIdentityStore(db, auth.NewBcrypt(bcrypt.MinCost), nil).
		CreateAccount(ctx, "noprofile@x.com", "secret1")
	require.NoError(t, err)

	tasks := postgres.NewPostgresTaskStore(db, nil)
	task, err := domain.NewTask(uid, "Buy milk", "2%, 1 gal")
	require.NoError(t, err)
	require.NoError(t, tasks.Create(ctx, task))

	list, err := tasks.ListByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, task.ID, list[0].ID)

	_, err = postgres.NewPostgresUserStore(db, nil).GetByID(ctx, uid)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
