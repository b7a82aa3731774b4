package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

// DatasetSelectedMsg is sent when a dataset is chosen in the ResultSet
type DatasetSelectedMsg struct {
	Dataset domain.Dataset
}

// ResultSet lists search results and reports the one chosen with enter
type ResultSet struct {
	datasets   []domain.Dataset
	cursor     int
	selectedID string
	focused    bool
	styles     *theme.Styles
}

func NewResultSet() ResultSet {
	return ResultSet{styles: theme.Default()}
}

// SetDatasets replaces the list, keeping the cursor in range.
func (r *ResultSet) SetDatasets(datasets []domain.Dataset) {
	r.datasets = datasets
	if r.cursor >= len(datasets) {
		r.cursor = 0
	}
}

// SetSelected marks the dataset currently selected in the explorer.
func (r *ResultSet) SetSelected(id string) { r.selectedID = id }

func (r *ResultSet) Focus() { r.focused = true }
func (r *ResultSet) Blur()  { r.focused = false }

func (r ResultSet) Len() int { return len(r.datasets) }

func (r ResultSet) Update(msg tea.Msg) (ResultSet, tea.Cmd) {
	if !r.focused {
		return r, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch key.String() {
	case "j", "down":
		if r.cursor < len(r.datasets)-1 {
			r.cursor++
		}
	case "k", "up":
		if r.cursor > 0 {
			r.cursor--
		}
	case "enter":
		if len(r.datasets) > 0 {
			d := r.datasets[r.cursor]
			return r, func() tea.Msg { return DatasetSelectedMsg{Dataset: d} }
		}
	}
	return r, nil
}

// View renders one block per dataset. An empty list renders nothing.
func (r ResultSet) View() string {
	if len(r.datasets) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(r.datasets))
	for i, d := range r.datasets {
		blocks = append(blocks, r.renderDataset(d, r.focused && i == r.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r ResultSet) renderDataset(d domain.Dataset, current bool) string {
	cursor := "  "
	if current {
		cursor = r.styles.Cursor.Render("> ")
	}

	title := r.styles.Bold.Render(d.Title)
	if d.ID == r.selectedID {
		title = r.styles.Highlighted.Render(d.Title + " ✓")
	}

	details := lipgloss.JoinVertical(lipgloss.Left,
		title,
		r.styles.Body.Render("Dataset ID: "+d.ID),
		r.styles.Body.Render("Organism: "+d.Organism),
		r.styles.Body.Render(fmt.Sprintf("Number of Samples: %d", d.Samples)),
		"",
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, cursor, details)
}
