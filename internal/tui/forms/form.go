// Package forms provides the embedded form used by the card editor.
// Fields sync their contents to bound string pointers on every update,
// so callers read results from the pointers rather than from the form.
package forms

import (
	tea "charm.land/bubbletea/v2"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Multiline reports whether enter inserts a newline in this field.
	// Single-line fields give enter up to the form, which advances focus.
	Multiline() bool
}

// Form manages a collection of fields with a single focus
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
}

// NewForm creates a new form with the given fields
func NewForm(fields ...Field) *Form {
	return &Form{
		fields:       fields,
		focusedIndex: 0,
		state:        StateInProgress,
	}
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.state = StateAborted
			return f, nil

		case "tab", "shift+tab":
			return f, f.moveFocus(keyMsg.String() == "shift+tab")

		case "enter":
			// Enter jumps from the title input to the description.
			// Inside the textarea it stays a newline.
			if f.focusedIndex < len(f.fields) && !f.fields[f.focusedIndex].Multiline() {
				return f, f.moveFocus(false)
			}
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// moveFocus blurs the current field and focuses the next one,
// wrapping around at either end
func (f *Form) moveFocus(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	return f.fields[f.focusedIndex].Focus()
}

// View renders all fields stacked vertically
func (f *Form) View() string {
	s := ""
	for _, field := range f.fields {
		s += field.View() + "\n\n"
	}
	return s
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Submit marks the form as completed
func (f *Form) Submit() {
	f.state = StateCompleted
}

// Abort marks the form as aborted
func (f *Form) Abort() {
	f.state = StateAborted
}
