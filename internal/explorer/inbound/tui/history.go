package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/genex/internal/ports"
	"github.com/emiliopalmerini/genex/internal/util"
)

const historyPageSize = 20

// HistoryReplayMsg asks the explorer to repeat a recorded search or analysis
type HistoryReplayMsg struct {
	Entry domain.HistoryEntry
}

type historyLoadedMsg struct {
	entries []*domain.HistoryEntry
}

type historyErrorMsg struct {
	err error
}

// History lists recently recorded searches and analyses
type History struct {
	repo    ports.HistoryRepository
	entries []*domain.HistoryEntry
	loading bool
	err     error
	cursor  int
	styles  *theme.Styles
}

func NewHistory(repo ports.HistoryRepository) *History {
	return &History{
		repo:    repo,
		loading: true,
		styles:  theme.Default(),
	}
}

func (h *History) Init() tea.Cmd {
	return h.load()
}

func (h *History) load() tea.Cmd {
	return func() tea.Msg {
		entries, err := h.repo.List(context.Background(), historyPageSize)
		if err != nil {
			return historyErrorMsg{err}
		}
		return historyLoadedMsg{entries}
	}
}

func (h *History) clear() tea.Cmd {
	return func() tea.Msg {
		if err := h.repo.Clear(context.Background()); err != nil {
			return historyErrorMsg{err}
		}
		return historyLoadedMsg{}
	}
}

func (h *History) Update(msg tea.Msg) (*History, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		h.loading = false
		h.err = nil
		h.entries = msg.entries
		h.cursor = 0
		return h, nil

	case historyErrorMsg:
		h.loading = false
		h.err = msg.err
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if h.cursor < len(h.entries)-1 {
				h.cursor++
			}
		case "k", "up":
			if h.cursor > 0 {
				h.cursor--
			}
		case "r":
			h.loading = true
			h.err = nil
			return h, h.load()
		case "x":
			h.loading = true
			h.err = nil
			return h, h.clear()
		case "enter":
			if len(h.entries) > 0 {
				entry := *h.entries[h.cursor]
				return h, func() tea.Msg { return HistoryReplayMsg{Entry: entry} }
			}
		}
	}

	return h, nil
}

func (h *History) View() string {
	if h.loading {
		return h.styles.Muted.Render("Loading history...")
	}

	if h.err != nil {
		return h.styles.Error.Render(fmt.Sprintf("Error: %v", h.err))
	}

	title := h.styles.Title.Render("History")

	if len(h.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, h.styles.Muted.Render("Nothing recorded yet."))
	}

	rows := make([]string, 0, len(h.entries))
	for i, e := range h.entries {
		rows = append(rows, h.renderRow(e, i == h.cursor))
	}

	help := h.styles.Help.Render("j/k: navigate  enter: replay  r: refresh  x: clear")

	return lipgloss.JoinVertical(lipgloss.Left, title, h.renderHeader(), lipgloss.JoinVertical(lipgloss.Left, rows...), help)
}

func (h *History) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(theme.Gray500).
		Bold(true)

	cols := []string{
		headerStyle.Copy().Width(14).Render("TIME"),
		headerStyle.Copy().Width(10).Render("KIND"),
		headerStyle.Copy().Width(30).Render("SUBJECT"),
		headerStyle.Copy().Width(20).Render("RESULT"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (h *History) renderRow(e *domain.HistoryEntry, selected bool) string {
	var subject, result string
	switch e.Kind {
	case domain.HistoryAnalysis:
		subject = e.GeneID + " in " + e.DatasetID
		p := domain.PredictionResult{Prediction: e.Prediction, Confidence: e.Confidence}
		result = p.Prediction.Label() + " " + p.ConfidenceText()
	default:
		subject = fmt.Sprintf("%q", e.Query)
		result = fmt.Sprintf("%d datasets", e.ResultCount)
	}
	if r := []rune(subject); len(r) > 28 {
		subject = string(r[:25]) + "..."
	}

	var style lipgloss.Style
	if selected {
		style = lipgloss.NewStyle().
			Foreground(theme.Black).
			Background(theme.White).
			Bold(true)
	} else {
		style = lipgloss.NewStyle().
			Foreground(theme.Gray400)
	}

	cols := []string{
		style.Copy().Width(14).Render(util.FormatDateShort(e.CreatedAt)),
		style.Copy().Width(10).Render(string(e.Kind)),
		style.Copy().Width(30).Render(subject),
		style.Copy().Width(20).Render(result),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
