package turso

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/genex/internal/migrate"
)

// Open connects like Connect and applies pending migrations.
func Open(ctx context.Context, databaseURL, authToken string) (*sql.DB, error) {
	db, err := Connect(ctx, databaseURL, authToken)
	if err != nil {
		return nil, err
	}

	if err := migrate.RunAll(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Connect opens a local libsql file ("file:...") or a remote Turso database
// ("libsql://...") without touching the schema.
func Connect(ctx context.Context, databaseURL, authToken string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	if path, ok := localPath(databaseURL); ok {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	connStr := databaseURL
	if authToken != "" && !strings.HasPrefix(databaseURL, "file:") {
		connStr = databaseURL + "?authToken=" + authToken
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if !strings.HasPrefix(databaseURL, "file:") {
		// Turso closes idle Hrana streams aggressively.
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(0)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// localPath returns the file path of a "file:" URL, ignoring in-memory databases.
func localPath(databaseURL string) (string, bool) {
	path, ok := strings.CutPrefix(databaseURL, "file:")
	if !ok {
		return "", false
	}
	path, _, _ = strings.Cut(path, "?")
	if path == "" || strings.HasPrefix(path, ":memory:") {
		return "", false
	}
	return path, true
}
