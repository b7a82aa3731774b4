package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/genex/migrations"
)

// Migration represents a single database migration with up and down SQL.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// Migrator applies embedded migrations to one database, reporting progress to out.
type Migrator struct {
	db  *sql.DB
	out io.Writer
}

// New creates a Migrator. A nil out discards progress output.
func New(db *sql.DB, out io.Writer) *Migrator {
	if out == nil {
		out = io.Discard
	}
	return &Migrator{db: db, out: out}
}

// EnsureMigrationsTable creates the schema_migrations table if it doesn't exist.
func (m *Migrator) EnsureMigrationsTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty INTEGER NOT NULL DEFAULT 0
		)
	`)
	return err
}

// CurrentVersion returns the current migration version and dirty state.
func (m *Migrator) CurrentVersion(ctx context.Context) (int, bool, error) {
	var version int
	var dirty int

	err := m.db.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version, &dirty)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return version, dirty == 1, nil
}

func (m *Migrator) setVersion(ctx context.Context, version int, dirty bool) error {
	dirtyInt := 0
	if dirty {
		dirtyInt = 1
	}

	if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return err
	}

	if version > 0 {
		_, err := m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirtyInt)
		return err
	}
	return nil
}

// Load reads all embedded migration files and returns them sorted by version.
func Load() ([]Migration, error) {
	var result []Migration

	upPattern := regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)

	err := fs.WalkDir(migrations.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matches := upPattern.FindStringSubmatch(filepath.Base(path))
		if matches == nil {
			return nil
		}

		version, _ := strconv.Atoi(matches[1])
		name := matches[2]

		upSQL, err := fs.ReadFile(migrations.FS, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		downPath := fmt.Sprintf("%03d_%s.down.sql", version, name)
		downSQL, err := fs.ReadFile(migrations.FS, downPath)
		if err != nil {
			downSQL = nil
		}

		result = append(result, Migration{
			Version: version,
			Name:    name,
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

// Run executes a single migration (up or down).
func (m *Migrator) Run(ctx context.Context, mig Migration, up bool) error {
	direction := "up"
	sqlContent := mig.UpSQL
	targetVersion := mig.Version
	if !up {
		direction = "down"
		sqlContent = mig.DownSQL
		targetVersion = mig.Version - 1
	}

	fmt.Fprintf(m.out, "  %s %d_%s...\n", direction, mig.Version, mig.Name)

	if err := m.setVersion(ctx, mig.Version, true); err != nil {
		return fmt.Errorf("failed to set dirty flag: %w", err)
	}

	for _, stmt := range SplitSQL(sqlContent) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration %d %s: %w\nSQL: %s", mig.Version, direction, err, stmt)
		}
	}

	if err := m.setVersion(ctx, targetVersion, false); err != nil {
		return fmt.Errorf("failed to clear dirty flag: %w", err)
	}

	return nil
}

// SplitSQL splits a SQL string by semicolons.
func SplitSQL(sql string) []string {
	return strings.Split(sql, ";")
}

// To migrates up or down until target is the current version.
func (m *Migrator) To(ctx context.Context, target int) error {
	current, all, err := m.prepare(ctx)
	if err != nil {
		return err
	}

	if target >= current {
		for _, mig := range all {
			if mig.Version <= current || mig.Version > target {
				continue
			}
			if err := m.Run(ctx, mig, true); err != nil {
				return err
			}
		}
	} else {
		for i := len(all) - 1; i >= 0; i-- {
			mig := all[i]
			if mig.Version > current || mig.Version <= target {
				continue
			}
			if mig.DownSQL == "" {
				return fmt.Errorf("no down migration for version %d", mig.Version)
			}
			if err := m.Run(ctx, mig, false); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(m.out, "Migrated to version %d\n", target)
	return nil
}

// Up runs all pending up migrations.
func (m *Migrator) Up(ctx context.Context) error {
	current, all, err := m.prepare(ctx)
	if err != nil {
		return err
	}

	count := 0
	for _, mig := range all {
		if mig.Version <= current {
			continue
		}
		if err := m.Run(ctx, mig, true); err != nil {
			return err
		}
		count++
	}

	if count == 0 {
		fmt.Fprintln(m.out, "No migrations to run")
		return nil
	}

	newVersion, _, _ := m.CurrentVersion(ctx)
	fmt.Fprintf(m.out, "Migrated to version %d (%d migrations applied)\n", newVersion, count)
	return nil
}

func (m *Migrator) prepare(ctx context.Context) (int, []Migration, error) {
	if err := m.EnsureMigrationsTable(ctx); err != nil {
		return 0, nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, dirty, err := m.CurrentVersion(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return 0, nil, fmt.Errorf("database is in dirty state at version %d", current)
	}

	all, err := Load()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	return current, all, nil
}

// RunAll runs all pending migrations on the provided database without output.
func RunAll(ctx context.Context, db *sql.DB) error {
	return New(db, nil).Up(ctx)
}
