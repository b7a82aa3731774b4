package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/adapters/logger"
	"github.com/emiliopalmerini/genex/internal/app"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Open the interactive explorer",
	Long: `Open the interactive explorer. This is also what genex does without a subcommand.

Keys:
  tab     move between the search box, the results and the gene box
  enter   search, select the highlighted dataset, or analyze the gene
  F1/F2   explorer / history
  esc     quit`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.NewFileLogger(cfg.Logging.File, cfg.Logging.Debug)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer log.Close()

	a, err := NewAppContext(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return app.Run(ctx, a.Orchestrator(), a.History)
}
