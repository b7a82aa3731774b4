package explorer

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/ports"
)

// Options configures an Orchestrator. Nil collaborators are replaced by no-ops.
type Options struct {
	History ports.HistoryRepository
	Metrics ports.MetricsExporter
	Logger  domain.Logger
	// DiscardStale drops settling messages that belong to a superseded
	// request. When false the last response to settle wins.
	DiscardStale bool
}

// Orchestrator owns the explorer state. All mutation happens in the
// methods below, which must be called from the Bubble Tea update loop.
// The returned commands perform the network calls and only produce messages.
type Orchestrator struct {
	backend      ports.Backend
	history      ports.HistoryRepository
	metrics      ports.MetricsExporter
	logger       domain.Logger
	discardStale bool

	state       State
	searchSeq   uint64
	analysisSeq uint64
}

// NewOrchestrator creates an Orchestrator in the initial state: no datasets,
// nothing selected, no results, nothing loading.
func NewOrchestrator(backend ports.Backend, opts Options) *Orchestrator {
	o := &Orchestrator{
		backend:      backend,
		history:      opts.History,
		metrics:      opts.Metrics,
		logger:       opts.Logger,
		discardStale: opts.DiscardStale,
	}
	if o.history == nil {
		o.history = nopHistory{}
	}
	if o.metrics == nil {
		o.metrics = nopMetrics{}
	}
	if o.logger == nil {
		o.logger = nopLogger{}
	}
	return o
}

// Snapshot returns a copy of the current state.
func (o *Orchestrator) Snapshot() State {
	return o.state.clone()
}

// SearchDatasets starts a dataset search. The query is sent as-is.
func (o *Orchestrator) SearchDatasets(query string) tea.Cmd {
	o.searchSeq++
	seq := o.searchSeq
	o.state.Query = query
	o.state.Datasets.start()

	reqID := uuid.NewString()
	o.logger.Debug(fmt.Sprintf("search #%d [%s] query=%q", seq, reqID, query))

	return func() tea.Msg {
		ctx := context.Background()

		start := time.Now()
		datasets, err := o.backend.SearchDatasets(ctx, query)
		o.metrics.RecordRequest(ctx, ports.RequestSample{
			Stream:   ports.StreamDatasets,
			Duration: time.Since(start),
			Err:      err,
		})

		if err != nil {
			o.logger.Error(fmt.Sprintf("search #%d [%s] failed: %v", seq, reqID, err))
			return DatasetsSettledMsg{Seq: seq, Query: query, Err: err}
		}

		o.record(ctx, &domain.HistoryEntry{
			Kind:        domain.HistorySearch,
			Query:       query,
			ResultCount: len(datasets),
		})
		return DatasetsSettledMsg{Seq: seq, Query: query, Datasets: datasets}
	}
}

// SelectDataset makes d the selected dataset. Results and errors computed
// for a previous dataset are cleared; in-flight loading flags are left to
// their settling message.
func (o *Orchestrator) SelectDataset(d domain.Dataset) {
	o.state.Selected = &d
	o.state.Expression.reset()
	o.state.Prediction.reset()
	o.logger.Debug(fmt.Sprintf("selected dataset %s", d.ID))
}

// AnalyzeGene analyzes geneID against the selected dataset, issuing the
// expression and prediction calls concurrently. It returns nil and changes
// nothing when no dataset is selected.
func (o *Orchestrator) AnalyzeGene(geneID string) tea.Cmd {
	if o.state.Selected == nil {
		return nil
	}

	o.analysisSeq++
	seq := o.analysisSeq
	dataset := *o.state.Selected
	q := domain.AnalysisQuery{GeneID: geneID, DatasetID: dataset.ID}

	o.state.GeneID = geneID
	o.state.Expression.reset()
	o.state.Prediction.reset()
	o.state.Expression.start()
	o.state.Prediction.start()

	reqID := uuid.NewString()
	o.logger.Debug(fmt.Sprintf("analysis #%d [%s] gene=%q dataset=%s", seq, reqID, geneID, dataset.ID))

	return func() tea.Msg {
		ctx := context.Background()
		msg := AnalysisSettledMsg{Seq: seq, Query: q}

		// No shared context: a failing call must not cancel its sibling.
		var g errgroup.Group
		g.Go(func() error {
			start := time.Now()
			msg.Expression, msg.ExpressionErr = o.backend.AnalyzeExpression(ctx, q)
			o.metrics.RecordRequest(ctx, ports.RequestSample{
				Stream:   ports.StreamExpression,
				Duration: time.Since(start),
				Err:      msg.ExpressionErr,
			})
			return msg.ExpressionErr
		})
		g.Go(func() error {
			start := time.Now()
			msg.Prediction, msg.PredictionErr = o.backend.PredictHealth(ctx, q)
			o.metrics.RecordRequest(ctx, ports.RequestSample{
				Stream:   ports.StreamPrediction,
				Duration: time.Since(start),
				Err:      msg.PredictionErr,
			})
			return msg.PredictionErr
		})

		if err := g.Wait(); err != nil {
			o.logger.Error(fmt.Sprintf("analysis #%d [%s] failed: %v", seq, reqID, err))
			return msg
		}

		o.record(ctx, &domain.HistoryEntry{
			Kind:         domain.HistoryAnalysis,
			DatasetID:    dataset.ID,
			DatasetTitle: dataset.Title,
			GeneID:       geneID,
			Prediction:   msg.Prediction.Prediction,
			Confidence:   msg.Prediction.Confidence,
			FoldChange:   msg.Expression.Statistics.FoldChange,
		})
		return msg
	}
}

// Update applies a settling message and reports whether the state changed.
func (o *Orchestrator) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case DatasetsSettledMsg:
		return o.settleDatasets(msg)
	case AnalysisSettledMsg:
		return o.settleAnalysis(msg)
	}
	return false
}

// Settle runs cmd synchronously and applies its message. Used outside the
// Bubble Tea loop by batch commands.
func (o *Orchestrator) Settle(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	o.Update(cmd())
}

func (o *Orchestrator) settleDatasets(msg DatasetsSettledMsg) bool {
	if msg.Seq != o.searchSeq {
		if o.discardStale {
			o.logger.Debug(fmt.Sprintf("discarding stale search #%d (latest #%d)", msg.Seq, o.searchSeq))
			return false
		}
		o.logger.Debug(fmt.Sprintf("search #%d settled after #%d was issued", msg.Seq, o.searchSeq))
	}

	if msg.Err != nil {
		o.state.Datasets.fail(ErrFetchDatasets)
		return true
	}

	datasets := msg.Datasets
	if datasets == nil {
		datasets = []domain.Dataset{}
	}
	o.state.Datasets.succeed(datasets)
	return true
}

func (o *Orchestrator) settleAnalysis(msg AnalysisSettledMsg) bool {
	if msg.Seq != o.analysisSeq {
		if o.discardStale {
			o.logger.Debug(fmt.Sprintf("discarding stale analysis #%d (latest #%d)", msg.Seq, o.analysisSeq))
			return false
		}
		o.logger.Debug(fmt.Sprintf("analysis #%d settled after #%d was issued", msg.Seq, o.analysisSeq))
	}

	if o.discardStale && (o.state.Selected == nil || o.state.Selected.ID != msg.Query.DatasetID) {
		o.logger.Debug(fmt.Sprintf("analysis #%d is for %s, no longer selected", msg.Seq, msg.Query.DatasetID))
		o.state.Expression.Loading = false
		o.state.Prediction.Loading = false
		return true
	}

	if msg.Failed() {
		o.state.Expression.fail(ErrAnalyzeExpression)
		o.state.Prediction.fail(ErrPredictHealth)
		return true
	}

	o.state.Expression.succeed(msg.Expression)
	o.state.Prediction.succeed(msg.Prediction)
	return true
}

// record stores a history entry. Failures are logged and otherwise ignored.
func (o *Orchestrator) record(ctx context.Context, entry *domain.HistoryEntry) {
	if err := o.history.Record(ctx, entry); err != nil {
		o.logger.Error(fmt.Sprintf("failed to record history: %v", err))
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Error(string) {}

type nopHistory struct{}

func (nopHistory) Record(context.Context, *domain.HistoryEntry) error { return nil }
func (nopHistory) List(context.Context, int) ([]*domain.HistoryEntry, error) {
	return nil, nil
}
func (nopHistory) Clear(context.Context) error { return nil }

type nopMetrics struct{}

func (nopMetrics) RecordRequest(context.Context, ports.RequestSample) {}
func (nopMetrics) Close(context.Context) error                     { return nil }
