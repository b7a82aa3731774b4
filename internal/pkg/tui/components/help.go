package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

// KeyMap adapts a flat list of bindings to help.KeyMap.
type KeyMap []key.Binding

func (k KeyMap) ShortHelp() []key.Binding  { return k }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

// HelpLine renders the enabled bindings on one line.
func HelpLine(bindings ...key.Binding) string {
	styles := theme.Default()

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted

	return styles.Help.Render(h.View(KeyMap(bindings)))
}
