package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/explorer"
	explorertui "github.com/emiliopalmerini/genex/internal/explorer/inbound/tui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <gene>",
	Short: "Analyze a gene within a dataset",
	Long: `Compare the expression of a gene between healthy and diseased samples of a
dataset and predict its health status.

Examples:
  genex analyze TP53 --dataset GSE123456
  genex analyze BRCA1 --dataset GSE123456 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// Flags
var (
	analyzeDataset string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDataset, "dataset", "d", "", "Dataset ID")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")
	_ = analyzeCmd.MarkFlagRequired("dataset")
}

// AnalysisReport is the JSON form of a completed analysis.
type AnalysisReport struct {
	DatasetID  string                       `json:"dataset_id"`
	GeneID     string                       `json:"gene_id"`
	Expression domain.ExpressionResult      `json:"expression"`
	Prediction domain.PredictionResult      `json:"prediction"`
	Summary    map[string]domain.BoxSummary `json:"summary"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *AppContext) error {
		state, err := analyze(ctx, a, analyzeDataset, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if analyzeJSON {
			return writeJSON(out, newAnalysisReport(state))
		}

		fmt.Fprintf(out, "%s in %s\n\n", state.GeneID, state.Selected.Title)
		fmt.Fprintln(out, explorertui.NewAnalysisView().View(state.Expression))
		fmt.Fprintln(out)
		fmt.Fprintln(out, explorertui.NewPredictionView().View(state.Prediction))
		return nil
	})
}

// analyze selects datasetID and runs one analysis to completion. The
// dataset title is looked up best effort.
func analyze(ctx context.Context, a *AppContext, datasetID, geneID string) (explorer.State, error) {
	dataset := domain.Dataset{ID: datasetID, Title: datasetID}
	if detail, err := a.Catalog.GetDataset(ctx, datasetID); err == nil {
		dataset.Title = detail.Title
		dataset.Samples = detail.Samples
	}

	o := a.Orchestrator()
	o.SelectDataset(dataset)
	o.Settle(o.AnalyzeGene(geneID))

	state := o.Snapshot()
	if state.Expression.Mode() == explorer.ModeFailed {
		return state, errors.New(state.Expression.Err)
	}
	return state, nil
}

func newAnalysisReport(state explorer.State) AnalysisReport {
	report := AnalysisReport{
		DatasetID:  state.Selected.ID,
		GeneID:     state.GeneID,
		Expression: state.Expression.Value,
		Prediction: state.Prediction.Value,
		Summary:    map[string]domain.BoxSummary{},
	}
	for _, g := range state.Expression.Value.Groups() {
		if s, err := domain.Summarize(g.Values); err == nil {
			report.Summary[g.Name] = s
		}
	}
	return report
}
