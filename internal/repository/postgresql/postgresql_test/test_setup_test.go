package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timesync-hq/timesync-ingest-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	connectErr error
	connect    sync.Once
)

// testDatabase connects to the database named by TEST_DATABASE_URL and skips
// the calling test when the variable is unset, so the integration suite is a
// no-op on machines without a database.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration test")
	}

	connect.Do(func() {
		testDB, connectErr = database.NewPostgreSQLDB(dsn)
	})
	require.NoError(t, connectErr, "failed to connect to test database")
	return testDB
}

// truncateAllTables resets every table the engine writes to, children first.
func truncateAllTables(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"attendance_entries",
		"projects",
		"users",
		"data_states",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}

// seedState inserts a data state row directly and returns its id.
func seedState(t *testing.T, db *database.DB, id, name string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO data_states (id, name) VALUES ($1, $2)
	`, id, name)
	require.NoError(t, err)
}
