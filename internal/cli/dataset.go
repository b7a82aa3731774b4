package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset <id>",
	Short: "Show dataset metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataset,
}

func runDataset(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *AppContext) error {
		detail, err := a.Catalog.GetDataset(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch dataset: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "ID:\t%s\n", args[0])
		fmt.Fprintf(w, "Title:\t%s\n", detail.Title)
		fmt.Fprintf(w, "Samples:\t%d\n", detail.Samples)
		fmt.Fprintf(w, "Platform:\t%s\n", detail.Platform)
		fmt.Fprintf(w, "Summary:\t%s\n", detail.Summary)
		return w.Flush()
	})
}
