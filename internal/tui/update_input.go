package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/state"
)

// ============================================================================
// LIST INPUT HANDLERS (create and rename prompts)
// ============================================================================

// updateInputMode handles keys while typing a list title.
func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m.confirmListInput()
	case "esc":
		return m.cancelListInput()
	case "backspace", "ctrl+h":
		m.inputState.Backspace()
		return m, nil
	default:
		// Only printable single-rune keys go into the buffer
		if len(key) == 1 {
			m.inputState.AppendChar(rune(key[0]))
		}
		return m, nil
	}
}

// confirmListInput applies the typed title. Empty input closes the prompt
// without touching the board.
func (m Model) confirmListInput() (tea.Model, tea.Cmd) {
	title := m.inputState.TrimmedBuffer()
	if title == "" {
		m.inputState.Clear()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.AddListMode:
		if _, ok := m.store.AddList(title); ok {
			// Jump to the new list at the end of the board
			m.uiState.SetSelectedList(len(m.lists()) - 1)
			m.uiState.SetSelectedCard(0)
			m.uiState.EnsureSelectionVisible(m.uiState.SelectedList())
		}
	case state.RenameListMode:
		if list := m.currentList(); list != nil {
			m.store.RenameList(list.ID, title)
		}
	}

	m.inputState.Clear()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// cancelListInput closes the prompt, asking for confirmation first when the
// buffer holds unsaved input.
func (m Model) cancelListInput() (tea.Model, tea.Cmd) {
	mode := m.uiState.Mode()

	hasChanges := false
	message := ""
	switch mode {
	case state.AddListMode:
		hasChanges = !m.inputState.IsEmpty()
		message = "Discard list?"
	case state.RenameListMode:
		hasChanges = m.inputState.HasInputChanges()
		message = "Discard changes?"
	}

	if hasChanges {
		m.uiState.SetDiscardContext(&state.DiscardContext{
			SourceMode: mode,
			Message:    message,
		})
		m.uiState.SetMode(state.DiscardConfirmMode)
		return m, nil
	}

	m.inputState.Clear()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}
