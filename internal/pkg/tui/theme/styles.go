package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles shared by the explorer screens.
type Styles struct {
	Title       lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Bold        lipgloss.Style
	Highlighted lipgloss.Style

	Cursor   lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style

	// Pane frames the analysis and prediction results.
	Pane lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Healthy  lipgloss.Style
	Diseased lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the shared Styles instance.
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

// Group returns the style of a sample group by name. Anything other than
// "Healthy" is drawn as diseased.
func (s *Styles) Group(name string) lipgloss.Style {
	if name == "Healthy" {
		return s.Healthy
	}
	return s.Diseased
}

// Status returns the affordance for a health prediction.
func (s *Styles) Status(healthy bool) lipgloss.Style {
	if healthy {
		return s.Success
	}
	return s.Warning
}

func newStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(White).MarginBottom(1),
		Body:        lipgloss.NewStyle().Foreground(Gray400),
		Muted:       lipgloss.NewStyle().Foreground(Gray500),
		Bold:        lipgloss.NewStyle().Bold(true).Foreground(White),
		Highlighted: lipgloss.NewStyle().Bold(true).Foreground(BrightTeal),

		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(BrightTeal),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(Black).Background(Teal).Padding(0, 1),
		Inactive: lipgloss.NewStyle().Foreground(Gray500).Padding(0, 1),

		Help:    lipgloss.NewStyle().MarginTop(1),
		HelpKey: lipgloss.NewStyle().Bold(true).Foreground(Gray400),

		Pane: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray700).Padding(0, 1),

		Success: lipgloss.NewStyle().Foreground(Success),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Error:   lipgloss.NewStyle().Foreground(Error),

		Healthy:  lipgloss.NewStyle().Foreground(Healthy),
		Diseased: lipgloss.NewStyle().Foreground(Diseased),
	}
}
