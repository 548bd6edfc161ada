package testutil

import (
	"database/sql"
	"testing"

	"github.com/adelaplace/maitre/internal/db"
)

// NewTestDB creates an in-memory SQLite database with the catalog
// schema applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
