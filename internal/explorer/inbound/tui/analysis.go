package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/explorer"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

// AnalysisView renders the expression stream: loading, then error, then
// nothing, then statistics and the box plot.
type AnalysisView struct {
	spinner spinner.Model
	styles  *theme.Styles
}

func NewAnalysisView() AnalysisView {
	return AnalysisView{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  theme.Default(),
	}
}

// Tick starts the loading spinner.
func (v AnalysisView) Tick() tea.Cmd { return v.spinner.Tick }

func (v AnalysisView) Update(msg tea.Msg) (AnalysisView, tea.Cmd) {
	var cmd tea.Cmd
	v.spinner, cmd = v.spinner.Update(msg)
	return v, cmd
}

func (v AnalysisView) View(s explorer.Stream[domain.ExpressionResult]) string {
	switch s.Mode() {
	case explorer.ModeLoading:
		return v.spinner.View() + " " + v.styles.Muted.Render("Analyzing gene expression...")
	case explorer.ModeFailed:
		return v.styles.Error.Render(s.Err)
	case explorer.ModeEmpty:
		return ""
	}

	stats := s.Value.Statistics
	summary := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Healthy.Render(fmt.Sprintf("Healthy Mean: %.2f", stats.HealthyMean)),
		v.styles.Diseased.Render(fmt.Sprintf("Diseased Mean: %.2f", stats.DiseasedMean)),
		v.styles.Bold.Render(fmt.Sprintf("Fold Change: %.2fx", stats.FoldChange)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Expression Analysis"),
		summary,
		"",
		RenderBoxPlot(s.Value.Groups(), plotWidth),
	)
}
