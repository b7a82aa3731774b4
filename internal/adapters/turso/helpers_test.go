package turso_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/emiliopalmerini/genex/internal/adapters/turso"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := turso.Open(context.Background(), "file:"+t.TempDir()+"/history.db", "")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}
