package components

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/genex/internal/pkg/tui/theme"
)

// SubmitMsg is emitted when enter is pressed in a focused SearchInput.
// ID tells apart several inputs on one screen.
type SubmitMsg struct {
	ID    string
	Value string
}

// SearchInput is a single-line text field that reports its value on enter.
// It never validates or clears what was typed.
type SearchInput struct {
	ID     string
	Label  string
	input  textinput.Model
	styles *theme.Styles
}

// NewSearchInput creates an unfocused input.
func NewSearchInput(id, label, placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)

	return SearchInput{
		ID:     id,
		Label:  label,
		input:  ti,
		styles: theme.Default(),
	}
}

func (s *SearchInput) Focus() tea.Cmd { return s.input.Focus() }

func (s *SearchInput) Blur() { s.input.Blur() }

func (s SearchInput) Focused() bool { return s.input.Focused() }

func (s SearchInput) Value() string { return s.input.Value() }

func (s *SearchInput) SetValue(v string) { s.input.SetValue(v) }

// Update handles key input. Enter emits a SubmitMsg carrying the current value,
// also when it equals the previous submission.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.input.Focused() {
		return s, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		submit := SubmitMsg{ID: s.ID, Value: s.input.Value()}
		return s, func() tea.Msg { return submit }
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s SearchInput) View() string {
	label := s.styles.Muted.Render(s.Label)
	if s.input.Focused() {
		label = s.styles.Highlighted.Render(s.Label)
	}
	return label + "\n" + s.input.View()
}
