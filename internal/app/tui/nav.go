package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

// screenTab is one entry of the navigation bar
type screenTab struct {
	screen Screen
	key    string
	label  string
}

var screenTabs = []screenTab{
	{ScreenExplore, "F1", "Explore"},
	{ScreenHistory, "F2", "History"},
}

// renderNav draws one tab per screen with the current one highlighted
func renderNav(current Screen, styles *theme.Styles) string {
	tabs := make([]string, 0, len(screenTabs))
	for _, t := range screenTabs {
		label := styles.Inactive.Render(t.label)
		if t.screen == current {
			label = styles.Active.Render(t.label)
		}
		tabs = append(tabs, styles.Muted.Render(t.key)+label)
	}
	return strings.Join(tabs, " ")
}

func renderHeader(styles *theme.Styles) string {
	title := styles.Bold.Render("GENE EXPRESSION EXPLORER")
	tagline := styles.Muted.Render("healthy vs diseased")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tagline)
}

func renderSeparator(width int) string {
	if width <= 0 {
		width = 64
	}
	return lipgloss.NewStyle().
		Foreground(theme.Gray700).
		Render(strings.Repeat("─", width))
}
