package testutil

import (
	"database/sql"
	"testing"

	"github.com/crewlane/crewlane/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a fresh in-memory SQLite database with the crewlane schema
// migrated, closed automatically when the test finishes. Every test gets its
// own database, so tests never share state.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps a test database in the real UnitOfWork implementation.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
