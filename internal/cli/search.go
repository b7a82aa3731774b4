package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/explorer"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search datasets",
	Long: `Search the backend for datasets matching a free-text query.

Examples:
  genex search cancer
  genex search "breast cancer" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var searchJSON bool

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *AppContext) error {
		o := a.Orchestrator()
		o.Settle(o.SearchDatasets(args[0]))

		datasets := o.Snapshot().Datasets
		if datasets.Mode() == explorer.ModeFailed {
			return errors.New(datasets.Err)
		}

		out := cmd.OutOrStdout()
		if searchJSON {
			return writeJSON(out, datasets.Value)
		}

		if len(datasets.Value) == 0 {
			fmt.Fprintln(out, "No datasets found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tORGANISM\tSAMPLES")
		for _, d := range datasets.Value {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", d.ID, d.Title, d.Organism, d.Samples)
		}
		return w.Flush()
	})
}
