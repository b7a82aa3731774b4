package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/util"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded searches and analyses",
	Long: `List recorded searches and analyses, newest first.

Examples:
  genex history              # Last 20 entries
  genex history --limit 50
  genex history --clear      # Delete all entries`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

// Flags
var (
	historyLimit int
	historyClear bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *AppContext) error {
		out := cmd.OutOrStdout()

		if !a.Config.History.Enabled {
			fmt.Fprintln(out, "History is disabled (GENEX_HISTORY_ENABLED=false).")
			return nil
		}

		if historyClear {
			if err := a.History.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "History cleared.")
			return nil
		}

		entries, err := a.History.List(ctx, historyLimit)
		if err != nil {
			return err
		}
		return printHistory(out, entries)
	})
}

func printHistory(out io.Writer, entries []*domain.HistoryEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, "Nothing recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tKIND\tSUBJECT\tRESULT")
	for _, e := range entries {
		var subject, result string
		switch e.Kind {
		case domain.HistoryAnalysis:
			p := domain.PredictionResult{Prediction: e.Prediction, Confidence: e.Confidence}
			subject = e.GeneID + " in " + e.DatasetID
			result = fmt.Sprintf("%s %s, fold change %.2fx", p.Prediction.Label(), p.ConfidenceText(), e.FoldChange)
		default:
			subject = fmt.Sprintf("%q", e.Query)
			result = fmt.Sprintf("%d datasets", e.ResultCount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", util.FormatDateTime(e.CreatedAt), e.Kind, subject, result)
	}
	return w.Flush()
}
