package migrate

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	_ "github.com/tursodatabase/go-libsql"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", "file:"+t.TempDir()+"/migrate.db")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("expected at least one migration")
	}
	if all[0].Version != 1 || all[0].Name != "history" {
		t.Errorf("unexpected first migration: %d_%s", all[0].Version, all[0].Name)
	}
	if all[0].DownSQL == "" {
		t.Error("expected down SQL for first migration")
	}
}

func TestUpAndDown(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	var out bytes.Buffer
	m := New(db, &out)

	if err := m.Up(ctx); err != nil {
		t.Fatalf("Up() error: %v", err)
	}
	version, dirty, err := m.CurrentVersion(ctx)
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 1 || dirty {
		t.Errorf("got version %d dirty %v, want 1 clean", version, dirty)
	}
	if !strings.Contains(out.String(), "up 1_history") {
		t.Errorf("expected progress output, got %q", out.String())
	}

	out.Reset()
	if err := m.Up(ctx); err != nil {
		t.Fatalf("second Up() error: %v", err)
	}
	if !strings.Contains(out.String(), "No migrations to run") {
		t.Errorf("expected idempotent Up, got %q", out.String())
	}

	if err := m.To(ctx, 0); err != nil {
		t.Fatalf("To(0) error: %v", err)
	}
	version, _, _ = m.CurrentVersion(ctx)
	if version != 0 {
		t.Errorf("got version %d after rollback, want 0", version)
	}

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'history'`).Scan(&count)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if count != 0 {
		t.Error("history table should be dropped after rollback")
	}
}
