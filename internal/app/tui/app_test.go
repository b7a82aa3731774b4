package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/explorer"
	explorertui "github.com/emiliopalmerini/genex/internal/explorer/inbound/tui"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/components"
	"github.com/emiliopalmerini/genex/internal/ports"
)

var studyA = domain.Dataset{ID: "GSE1", Title: "Study A", Organism: "human", Samples: 20}

func testBackend() *ports.MockBackend {
	return &ports.MockBackend{
		SearchDatasetsFunc: func(ctx context.Context, query string) ([]domain.Dataset, error) {
			return []domain.Dataset{studyA}, nil
		},
		AnalyzeExpressionFunc: func(ctx context.Context, q domain.AnalysisQuery) (domain.ExpressionResult, error) {
			return domain.ExpressionResult{
				ExpressionData: domain.ExpressionData{Healthy: []float64{5, 6, 7}, Diseased: []float64{10, 11, 12}},
				Statistics:     domain.Statistics{HealthyMean: 6, DiseasedMean: 11, FoldChange: 1.83},
			}, nil
		},
		PredictHealthFunc: func(ctx context.Context, q domain.AnalysisQuery) (domain.PredictionResult, error) {
			return domain.PredictionResult{Prediction: domain.StatusDiseased, Confidence: 87}, nil
		},
	}
}

type memHistory struct {
	entries []*domain.HistoryEntry
}

func (m *memHistory) Record(ctx context.Context, e *domain.HistoryEntry) error {
	m.entries = append([]*domain.HistoryEntry{e}, m.entries...)
	return nil
}

func (m *memHistory) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	return m.entries, nil
}

func (m *memHistory) Clear(ctx context.Context) error {
	m.entries = nil
	return nil
}

// run executes cmd and everything it leads to, dropping spinner ticks so
// the animation loop does not run forever.
func run(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(a, c)
		}
	case spinner.TickMsg:
	default:
		_, next := a.Update(msg)
		run(a, next)
	}
}

func newTestApp(backend ports.Backend, history ports.HistoryRepository) *App {
	o := explorer.NewOrchestrator(backend, explorer.Options{History: history})
	return NewApp(o, history)
}

func TestApp_SearchSelectAnalyze(t *testing.T) {
	a := newTestApp(testBackend(), &memHistory{})

	_, cmd := a.Update(components.SubmitMsg{ID: queryInputID, Value: "cancer"})
	if !strings.Contains(a.View(), "Searching datasets...") {
		t.Error("expected loading indicator while searching")
	}
	run(a, cmd)

	view := a.View()
	for _, want := range []string{"GENE EXPRESSION EXPLORER", "Study A", "Dataset ID: GSE1", "Number of Samples: 20"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	a.Update(explorertui.DatasetSelectedMsg{Dataset: studyA})
	if a.focus != FocusGene {
		t.Errorf("focus = %v, want gene input", a.focus)
	}
	if !strings.Contains(a.View(), "Selected: Study A (GSE1)") {
		t.Error("expected selected dataset line")
	}

	_, cmd = a.Update(components.SubmitMsg{ID: geneInputID, Value: "TP53"})
	view = a.View()
	if !strings.Contains(view, "Analyzing gene expression...") || !strings.Contains(view, "Predicting health status...") {
		t.Error("expected both streams loading")
	}
	run(a, cmd)

	view = a.View()
	for _, want := range []string{"Fold Change: 1.83x", "Diseased", "Confidence: 87%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_AnalyzeWithoutSelectionIsIgnored(t *testing.T) {
	a := newTestApp(testBackend(), &memHistory{})

	_, cmd := a.Update(components.SubmitMsg{ID: geneInputID, Value: "TP53"})

	if cmd != nil {
		t.Error("expected no command without a selected dataset")
	}
	if strings.Contains(a.View(), "Analyzing") {
		t.Error("no stream should be loading")
	}
}

func TestApp_SearchFailure(t *testing.T) {
	backend := testBackend()
	backend.SearchDatasetsFunc = func(ctx context.Context, query string) ([]domain.Dataset, error) {
		return nil, errors.New("connection refused")
	}
	a := newTestApp(backend, &memHistory{})

	_, cmd := a.Update(components.SubmitMsg{ID: queryInputID, Value: "cancer"})
	run(a, cmd)

	if !strings.Contains(a.View(), "Failed to fetch datasets. Please try again.") {
		t.Error("expected fixed search error message")
	}
}

func TestApp_FocusCycle(t *testing.T) {
	a := newTestApp(testBackend(), &memHistory{})
	tab := tea.KeyMsg{Type: tea.KeyTab}

	a.Update(tab)
	if a.focus != FocusResults {
		t.Fatalf("focus = %v, want results", a.focus)
	}
	a.Update(tab)
	if a.focus != FocusQuery {
		t.Fatalf("gene input should be skipped without a selection, focus = %v", a.focus)
	}

	a.Update(explorertui.DatasetSelectedMsg{Dataset: studyA})
	a.Update(tab)
	if a.focus != FocusQuery {
		t.Errorf("focus after gene = %v, want query", a.focus)
	}
}

func TestApp_ScreensAndReplay(t *testing.T) {
	history := &memHistory{entries: []*domain.HistoryEntry{{
		Kind:         domain.HistoryAnalysis,
		DatasetID:    "GSE1",
		DatasetTitle: "Study A",
		GeneID:       "TP53",
		Prediction:   domain.StatusDiseased,
		Confidence:   87,
	}}}
	a := newTestApp(testBackend(), history)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyF2})
	if a.currentScreen != ScreenHistory {
		t.Fatal("F2 should open history")
	}
	run(a, cmd)
	if !strings.Contains(a.View(), "TP53 in GSE1") {
		t.Error("history screen should list the recorded analysis")
	}

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(a, cmd)

	if a.currentScreen != ScreenExplore {
		t.Fatal("replay should return to the explorer")
	}
	state := a.orchestrator.Snapshot()
	if state.Selected == nil || state.Selected.ID != "GSE1" {
		t.Fatalf("replay should select GSE1, got %+v", state.Selected)
	}
	if state.Prediction.Mode() != explorer.ModeReady {
		t.Errorf("replay should rerun the analysis, prediction mode = %v", state.Prediction.Mode())
	}
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp(testBackend(), &memHistory{})

	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := a.Update(key)
		if cmd == nil {
			t.Fatalf("%s should quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", key)
		}
	}
}

func TestApp_SpinnerStopsWhenIdle(t *testing.T) {
	a := newTestApp(testBackend(), &memHistory{})

	if _, cmd := a.Update(spinner.TickMsg{}); cmd != nil {
		t.Error("expected no tick before any analysis")
	}

	a.Update(explorertui.DatasetSelectedMsg{Dataset: studyA})
	_, cmd := a.Update(components.SubmitMsg{ID: geneInputID, Value: "TP53"})
	if _, tick := a.Update(spinner.TickMsg{}); tick == nil {
		t.Error("expected spinner to keep ticking while analyzing")
	}

	run(a, cmd)
	if _, tick := a.Update(spinner.TickMsg{}); tick != nil {
		t.Error("expected spinner to stop after analysis settled")
	}
}
