package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/regwise/internal/db"
)

// NewTestDB opens a migrated in-memory catalog database that is closed when
// the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// FailingUoW fails the nth write of the transaction with err.
func FailingUoW(database *sql.DB, n int32, err error) db.UnitOfWork {
	return &FailOnNthExecUoW{DB: database, FailOn: n, Err: err}
}
