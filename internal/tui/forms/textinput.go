package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/tui/theme"
)

// TextInput is a single-line field bound to a string pointer
type TextInput struct {
	label string
	value *string
	input textinput.Model
}

// NewTextInput creates a single-line field. The bound value seeds the
// field when editing an existing card.
func NewTextInput(label, placeholder string, charLimit int, value *string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	if value != nil && *value != "" {
		ti.SetValue(*value)
	}

	return &TextInput{
		label: label,
		value: value,
		input: ti,
	}
}

// Update handles messages and syncs the bound value
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.value != nil {
		*t.value = t.input.Value()
	}

	return t, cmd
}

// View renders the label and the input, dimming the label when the
// field is not focused
func (t *TextInput) View() string {
	return renderFieldLabel(t.label, t.input.Focused()) + "\n" + t.input.View()
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Multiline reports that enter should advance focus, not insert a line
func (t *TextInput) Multiline() bool {
	return false
}

// renderFieldLabel renders a field label, highlighted while the field
// holds focus
func renderFieldLabel(label string, focused bool) string {
	color := theme.Subtle
	if focused {
		color = theme.Highlight
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color)).
		Render(label)
}
