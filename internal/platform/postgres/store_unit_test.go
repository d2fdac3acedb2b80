package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/postgres"
	"github.com/phrazzld/tasklist/internal/service/auth"
	"github.com/phrazzld/tasklist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type execCall struct {
	query string
	args  []any
}

// fakeDBTX records ExecContext calls and answers them with result/err.
// Query methods are not supported.
type fakeDBTX struct {
	result sql.Result
	err    error
	calls  []execCall
}

func (f *fakeDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return MockResult{rowsAffected: 1}, nil
	}
	return f.result, nil
}

func (f *fakeDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	panic("QueryRowContext not supported by fakeDBTX")
}

func TestConstructors_PanicOnNilDB(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { postgres.NewPostgresTaskStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresUserStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresIdentityStore(nil, nil, nil) })
}

func TestIdentityStore_CreateAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	passwords := auth.NewBcrypt(bcrypt.MinCost)

	t.Run("stores normalized email and a hash", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresIdentityStore(db, passwords, nil)

		id, err := s.CreateAccount(ctx, " A@X.com ", "secret1")
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		require.Len(t, db.calls, 1)
		args := db.calls[0].args
		assert.Equal(t, id, args[0])
		assert.Equal(t, "a@x.com", args[1])
		assert.NoError(t, passwords.Compare(args[2].(string), "secret1"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &fakeDBTX{err: newPgError("23505")}
		s := postgres.NewPostgresIdentityStore(db, passwords, nil)

		_, err := s.CreateAccount(ctx, "a@x.com", "secret1")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("unusable password is rejected before insert", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresIdentityStore(db, passwords, nil)

		_, err := s.CreateAccount(ctx, "a@x.com", "")
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Empty(t, db.calls)
	})

	t.Run("driver failure", func(t *testing.T) {
		db := &fakeDBTX{err: errors.New("connection refused")}
		s := postgres.NewPostgresIdentityStore(db, passwords, nil)

		_, err := s.CreateAccount(ctx, "a@x.com", "secret1")
		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "account", storeErr.Entity)
	})
}

func TestUserStore_Save(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("upserts profile", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresUserStore(db, nil)

		require.NoError(t, s.Save(ctx, &domain.User{ID: "uid-1", Email: "a@x.com"}))
		require.Len(t, db.calls, 1)
		assert.Contains(t, db.calls[0].query, "ON CONFLICT (id)")
		assert.Equal(t, []any{"uid-1", "a@x.com"}, db.calls[0].args)
	})

	t.Run("invalid profile", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresUserStore(db, nil)

		err := s.Save(ctx, &domain.User{Email: "a@x.com"})
		assert.ErrorIs(t, err, domain.ErrEmptyUserID)
		assert.Empty(t, db.calls)
	})

	t.Run("missing account", func(t *testing.T) {
		db := &fakeDBTX{err: newPgError("23503")}
		s := postgres.NewPostgresUserStore(db, nil)

		err := s.Save(ctx, &domain.User{ID: "uid-1", Email: "a@x.com"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestTaskStore_Writes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	task := &domain.Task{ID: "t1", Name: "Buy milk", Description: "2%", Status: domain.TaskStatusPending, UserID: "uid-1"}

	t.Run("create", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresTaskStore(db, nil)

		require.NoError(t, s.Create(ctx, task))
		require.Len(t, db.calls, 1)
		assert.Equal(t, []any{"t1", "Buy milk", "2%", "Pending", "uid-1"}, db.calls[0].args)
	})

	t.Run("create invalid task", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresTaskStore(db, nil)

		invalid := *task
		invalid.Status = "Done"
		assert.ErrorIs(t, s.Create(ctx, &invalid), domain.ErrValidation)
		assert.Empty(t, db.calls)
	})

	t.Run("update status", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresTaskStore(db, nil)

		require.NoError(t, s.UpdateField(ctx, "t1", domain.TaskFieldStatus, "Completed"))
		require.Len(t, db.calls, 1)
		assert.Contains(t, db.calls[0].query, "SET status = $1")
		assert.Equal(t, []any{"Completed", "t1"}, db.calls[0].args)
	})

	t.Run("update description", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresTaskStore(db, nil)

		require.NoError(t, s.UpdateField(ctx, "t1", domain.TaskFieldDescription, ""))
		assert.Contains(t, db.calls[0].query, "SET description = $1")
	})

	t.Run("update rejects bad input without a query", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresTaskStore(db, nil)

		assert.ErrorIs(t, s.UpdateField(ctx, "t1", domain.TaskFieldStatus, "Done"), domain.ErrInvalidTaskStatus)
		assert.ErrorIs(t, s.UpdateField(ctx, "t1", domain.TaskField("name"), "x"), domain.ErrInvalidTaskField)
		assert.Empty(t, db.calls)
	})

	t.Run("update missing task", func(t *testing.T) {
		s := postgres.NewPostgresTaskStore(&fakeDBTX{result: MockResult{}}, nil)
		assert.ErrorIs(t, s.UpdateField(ctx, "nope", domain.TaskFieldStatus, "Completed"), store.ErrTaskNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		db := &fakeDBTX{}
		s := postgres.NewPostgresTaskStore(db, nil)

		require.NoError(t, s.Delete(ctx, "t1"))
		assert.Equal(t, []any{"t1"}, db.calls[0].args)
	})

	t.Run("delete missing task", func(t *testing.T) {
		s := postgres.NewPostgresTaskStore(&fakeDBTX{result: MockResult{}}, nil)
		assert.ErrorIs(t, s.Delete(ctx, "nope"), store.ErrTaskNotFound)
	})
}
