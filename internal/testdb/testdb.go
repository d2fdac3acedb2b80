package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/tasklist/internal/platform/postgres"
	"github.com/phrazzld/tasklist/internal/redact"
	"github.com/stretchr/testify/require"
)

// Timeout bounds each helper's database round trip.
const Timeout = 10 * time.Second

// Open connects to the test database, applies the embedded migrations and
// empties every table. The connection is closed when the test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	dbURL := DatabaseURL()
	if dbURL == "" {
		if IsCI() {
			t.Fatalf("no test database configured: set %s or %s", EnvTestDatabaseURL, EnvDatabaseURL)
		}
		t.Skipf("%s / %s not set - skipping integration test", EnvTestDatabaseURL, EnvDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	db, err := postgres.Open(ctx, dbURL, nil)
	require.NoError(t, err, "failed to open test database at %s", redact.String(dbURL))
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	require.NoError(t, postgres.Migrate(ctx, db, postgres.MigrateUp, nil), "failed to migrate test database")
	Reset(t, db)
	return db
}

// Reset removes all rows.
func Reset(t testing.TB, db *sql.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	_, err := db.ExecContext(ctx, `TRUNCATE tasks, users, accounts`)
	require.NoError(t, err, "failed to truncate test tables")
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Logf("warning: failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
