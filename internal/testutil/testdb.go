package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/tasktory/internal/db"
)

// NewTestDB opens a migrated in-memory database that is closed when the test
// ends. The pool holds one connection; see db.OpenDB.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns the production unit of work over database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
