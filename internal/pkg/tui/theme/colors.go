package theme

import "github.com/charmbracelet/lipgloss"

var (
	// Sample groups
	Healthy  = lipgloss.Color("#2196F3")
	Diseased = lipgloss.Color("#F44336")

	// Accent
	Teal       = lipgloss.Color("#14B8A6")
	BrightTeal = lipgloss.Color("#2DD4BF")

	// Neutrals
	White   = lipgloss.Color("#FFFFFF")
	Gray400 = lipgloss.Color("#A3A3A3")
	Gray500 = lipgloss.Color("#737373")
	Gray600 = lipgloss.Color("#525252")
	Gray700 = lipgloss.Color("#404040")
	Black   = lipgloss.Color("#111827")

	// Prediction affordances and failures
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
)
