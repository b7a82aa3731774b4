package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/adapters/turso"
	"github.com/emiliopalmerini/genex/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run history database migrations",
	Long: `Run history database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  genex migrate      # Run all pending migrations
  genex migrate 0    # Drop the history schema`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := turso.Connect(ctx, cfg.History.DatabaseURL, cfg.History.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	m := migrate.New(db, cmd.OutOrStdout())

	if len(args) == 0 {
		return m.Up(ctx)
	}

	target, err := strconv.Atoi(args[0])
	if err != nil || target < 0 {
		return fmt.Errorf("invalid version %q", args[0])
	}
	return m.To(ctx, target)
}
