package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an expression box plot as PNG",
	Long: `Run an analysis and write the healthy vs diseased box plot to a PNG file.

Examples:
  genex export --dataset GSE123456 --gene TP53
  genex export --dataset GSE123456 --gene TP53 --out tp53.png --width 1200`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// Flags
var (
	exportDataset string
	exportGene    string
	exportOutput  string
	exportWidth   int
	exportHeight  int
)

func init() {
	exportCmd.Flags().StringVarP(&exportDataset, "dataset", "d", "", "Dataset ID")
	exportCmd.Flags().StringVarP(&exportGene, "gene", "g", "", "Gene identifier")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file (default: <gene>_<dataset>.png)")
	exportCmd.Flags().IntVar(&exportWidth, "width", export.DefaultWidth, "Image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", export.DefaultHeight, "Image height in pixels")
	_ = exportCmd.MarkFlagRequired("dataset")
	_ = exportCmd.MarkFlagRequired("gene")
}

func runExport(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *AppContext) error {
		state, err := analyze(ctx, a, exportDataset, exportGene)
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = fmt.Sprintf("%s_%s.png", exportGene, exportDataset)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		title := fmt.Sprintf("%s in %s (fold change %.2fx)", state.GeneID, state.Selected.Title, state.Expression.Value.Statistics.FoldChange)
		if err := export.BoxPlotPNG(f, title, state.Expression.Value.Groups(), exportWidth, exportHeight); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return f.Close()
	})
}
