package components

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

const confidenceBarWidth = 40

// ConfidenceBar renders a fraction in [0,1] as a solid horizontal bar.
type ConfidenceBar struct {
	bar progress.Model
}

// NewConfidenceBar creates a bar filled in the success or warning color.
func NewConfidenceBar(success bool) ConfidenceBar {
	color := string(theme.Warning)
	if success {
		color = string(theme.Success)
	}

	bar := progress.New(
		progress.WithWidth(confidenceBarWidth),
		progress.WithoutPercentage(),
		progress.WithSolidFill(color),
	)
	bar.Full = '█'
	bar.Empty = '░'
	return ConfidenceBar{bar: bar}
}

// View renders the bar with the given filled fraction.
func (c ConfidenceBar) View(fraction float64) string {
	return c.bar.ViewAs(fraction)
}
