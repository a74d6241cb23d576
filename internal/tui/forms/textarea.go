package forms

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea is a multi-line field bound to a string pointer
type TextArea struct {
	label    string
	value    *string
	textarea textarea.Model
}

// NewTextArea creates a multi-line field. The bound value seeds the
// field when editing an existing card.
func NewTextArea(label, placeholder string, charLimit int, value *string) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	ta.SetHeight(5)
	if value != nil && *value != "" {
		ta.SetValue(*value)
	}

	return &TextArea{
		label:    label,
		value:    value,
		textarea: ta,
	}
}

// Update handles messages and syncs the bound value
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)

	if t.value != nil {
		*t.value = t.textarea.Value()
	}

	return t, cmd
}

// View renders the label and the text area
func (t *TextArea) View() string {
	return renderFieldLabel(t.label, t.textarea.Focused()) + "\n" + t.textarea.View()
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the textarea is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Multiline reports that enter inserts a newline in this field
func (t *TextArea) Multiline() bool {
	return true
}
