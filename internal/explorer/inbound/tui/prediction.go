package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/genex/internal/domain"
	"github.com/emiliopalmerini/genex/internal/explorer"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/components"
	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

// PredictionView renders the prediction stream with the same priority as
// AnalysisView.
type PredictionView struct {
	spinner spinner.Model
	styles  *theme.Styles
}

func NewPredictionView() PredictionView {
	return PredictionView{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  theme.Default(),
	}
}

func (v PredictionView) Tick() tea.Cmd { return v.spinner.Tick }

func (v PredictionView) Update(msg tea.Msg) (PredictionView, tea.Cmd) {
	var cmd tea.Cmd
	v.spinner, cmd = v.spinner.Update(msg)
	return v, cmd
}

func (v PredictionView) View(s explorer.Stream[domain.PredictionResult]) string {
	switch s.Mode() {
	case explorer.ModeLoading:
		return v.spinner.View() + " " + v.styles.Muted.Render("Predicting health status...")
	case explorer.ModeFailed:
		return v.styles.Error.Render(s.Err)
	case explorer.ModeEmpty:
		return ""
	}

	p := s.Value
	marker := "▲"
	if p.Healthy() {
		marker = "●"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Health Status Prediction"),
		v.styles.Status(p.Healthy()).Bold(true).Render(marker+" "+p.Prediction.Label()),
		v.styles.Body.Render("Confidence: "+p.ConfidenceText()),
		components.NewConfidenceBar(p.Healthy()).View(p.ConfidenceFraction()),
	)
}
