package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/explorer"
	explorertui "github.com/emiliopalmerini/genex/internal/explorer/inbound/tui"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/components"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/genex/internal/ports"
)

// Screen identifies the current screen
type Screen int

const (
	ScreenExplore Screen = iota
	ScreenHistory
)

// Focus identifies the widget receiving keys on the explore screen
type Focus int

const (
	FocusQuery Focus = iota
	FocusResults
	FocusGene
)

const (
	queryInputID = "query"
	geneInputID  = "gene"
)

type keyMap struct {
	Quit    key.Binding
	Explore key.Binding
	History key.Binding
	Focus   key.Binding
	Submit  key.Binding
	Move    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	Explore: key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "explore")),
	History: key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "history")),
	Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit/select")),
	Move:    key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("j/k", "move")),
}

// App is the root explorer model. It is the only caller of the
// Orchestrator's mutating methods.
type App struct {
	orchestrator *explorer.Orchestrator
	history      ports.HistoryRepository

	currentScreen Screen
	focus         Focus

	query         components.SearchInput
	gene          components.SearchInput
	results       explorertui.ResultSet
	analysis      explorertui.AnalysisView
	prediction    explorertui.PredictionView
	historyScreen *explorertui.History

	styles *theme.Styles
	width  int
	height int
}

// NewApp creates the explorer application
func NewApp(orchestrator *explorer.Orchestrator, history ports.HistoryRepository) *App {
	a := &App{
		orchestrator:  orchestrator,
		history:       history,
		currentScreen: ScreenExplore,
		query:         components.NewSearchInput(queryInputID, "Search datasets", "e.g. breast cancer"),
		gene:          components.NewSearchInput(geneInputID, "Gene", "e.g. TP53"),
		results:       explorertui.NewResultSet(),
		analysis:      explorertui.NewAnalysisView(),
		prediction:    explorertui.NewPredictionView(),
		styles:        theme.Default(),
	}
	a.setFocus(FocusQuery)
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.query.Focus()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Explore):
			a.currentScreen = ScreenExplore
			return a, nil
		case key.Matches(msg, keys.History):
			if a.currentScreen != ScreenHistory {
				a.currentScreen = ScreenHistory
				a.historyScreen = explorertui.NewHistory(a.history)
				return a, a.historyScreen.Init()
			}
			return a, nil
		case key.Matches(msg, keys.Focus):
			if a.currentScreen == ScreenExplore {
				return a, a.setFocus(a.nextFocus())
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case components.SubmitMsg:
		return a, a.submit(msg)

	case explorertui.DatasetSelectedMsg:
		a.selectDataset(msg.Dataset)
		return a, a.setFocus(FocusGene)

	case explorertui.HistoryReplayMsg:
		a.currentScreen = ScreenExplore
		return a, a.replay(msg.Entry)

	case explorer.DatasetsSettledMsg, explorer.AnalysisSettledMsg:
		if a.orchestrator.Update(msg) {
			a.results.SetDatasets(a.orchestrator.Snapshot().Datasets.Value)
		}
		return a, nil

	case spinner.TickMsg:
		// Let the spinners stop once neither stream is in flight
		if state := a.orchestrator.Snapshot(); !state.Expression.Loading && !state.Prediction.Loading {
			return a, nil
		}
		var analysisCmd, predictionCmd tea.Cmd
		a.analysis, analysisCmd = a.analysis.Update(msg)
		a.prediction, predictionCmd = a.prediction.Update(msg)
		return a, tea.Batch(analysisCmd, predictionCmd)
	}

	// Forward to current screen
	var cmd tea.Cmd
	switch a.currentScreen {
	case ScreenExplore:
		switch a.focus {
		case FocusQuery:
			a.query, cmd = a.query.Update(msg)
		case FocusResults:
			a.results, cmd = a.results.Update(msg)
		case FocusGene:
			a.gene, cmd = a.gene.Update(msg)
		}
	case ScreenHistory:
		if a.historyScreen != nil {
			a.historyScreen, cmd = a.historyScreen.Update(msg)
		}
	}

	return a, cmd
}

func (a *App) submit(msg components.SubmitMsg) tea.Cmd {
	switch msg.ID {
	case queryInputID:
		return a.orchestrator.SearchDatasets(msg.Value)
	case geneInputID:
		cmd := a.orchestrator.AnalyzeGene(msg.Value)
		if cmd == nil {
			return nil
		}
		return tea.Batch(cmd, a.analysis.Tick(), a.prediction.Tick())
	}
	return nil
}

func (a *App) selectDataset(d domain.Dataset) {
	a.orchestrator.SelectDataset(d)
	a.results.SetSelected(d.ID)
}

func (a *App) replay(entry domain.HistoryEntry) tea.Cmd {
	switch entry.Kind {
	case domain.HistoryAnalysis:
		a.selectDataset(entry.Dataset())
		a.gene.SetValue(entry.GeneID)
		return tea.Batch(a.setFocus(FocusGene), a.submit(components.SubmitMsg{ID: geneInputID, Value: entry.GeneID}))
	default:
		a.query.SetValue(entry.Query)
		return tea.Batch(a.setFocus(FocusQuery), a.submit(components.SubmitMsg{ID: queryInputID, Value: entry.Query}))
	}
}

// nextFocus cycles query, results, gene. The gene input only takes focus
// once a dataset is selected.
func (a *App) nextFocus() Focus {
	switch a.focus {
	case FocusQuery:
		return FocusResults
	case FocusResults:
		if a.orchestrator.Snapshot().Selected != nil {
			return FocusGene
		}
		return FocusQuery
	default:
		return FocusQuery
	}
}

func (a *App) setFocus(f Focus) tea.Cmd {
	a.focus = f
	a.query.Blur()
	a.gene.Blur()
	a.results.Blur()

	switch f {
	case FocusQuery:
		return a.query.Focus()
	case FocusResults:
		a.results.Focus()
	case FocusGene:
		return a.gene.Focus()
	}
	return nil
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.currentScreen {
	case ScreenExplore:
		content = a.renderExplore()
	case ScreenHistory:
		if a.historyScreen != nil {
			content = a.historyScreen.View()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.styles),
		renderNav(a.currentScreen, a.styles),
		renderSeparator(a.width),
		"",
		content,
	)
}

func (a *App) renderExplore() string {
	state := a.orchestrator.Snapshot()

	sections := []string{a.query.View(), ""}

	switch state.Datasets.Mode() {
	case explorer.ModeLoading:
		sections = append(sections, a.styles.Muted.Render("Searching datasets..."))
	case explorer.ModeFailed:
		sections = append(sections, a.styles.Error.Render(state.Datasets.Err))
	case explorer.ModeReady:
		if len(state.Datasets.Value) == 0 {
			sections = append(sections, a.styles.Muted.Render("No datasets found."))
		} else {
			sections = append(sections, a.results.View())
		}
	}

	if state.Selected != nil {
		selected := a.styles.Muted.Render("Selected: ") +
			a.styles.Highlighted.Render(state.Selected.Title) +
			a.styles.Muted.Render(" ("+state.Selected.ID+")")
		sections = append(sections, "", selected, a.gene.View())
	}

	var panes []string
	for _, view := range []string{a.analysis.View(state.Expression), a.prediction.View(state.Prediction)} {
		if view != "" {
			panes = append(panes, a.styles.Pane.Render(view))
		}
	}
	if len(panes) > 0 {
		sections = append(sections, "", lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	}

	sections = append(sections, components.HelpLine(keys.Focus, keys.Submit, keys.Move, keys.History, keys.Quit))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
