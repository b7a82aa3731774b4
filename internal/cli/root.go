package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "genex",
	Short: "Explore gene expression in healthy and diseased samples",
	Long: `genex is a terminal client for a gene-expression analysis backend.

Search datasets, pick one, enter a gene and compare its expression between
healthy and diseased samples next to a predicted health status.

Running genex without a subcommand opens the interactive explorer.`,
	SilenceUsage: true,
	RunE:         runExplore,
}

// Flags
var (
	flagAPIURL       string
	flagDiscardStale bool
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Backend base URL (overrides GENEX_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&flagDiscardStale, "discard-stale", false, "Ignore responses to superseded requests (overrides GENEX_DISCARD_STALE)")

	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(mockAPICmd)
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("api-url") {
		cfg.API.URL = flagAPIURL
	}
	if cmd.Flags().Changed("discard-stale") {
		cfg.API.DiscardStale = flagDiscardStale
	}
	return cfg, nil
}
