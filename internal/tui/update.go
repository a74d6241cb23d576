package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The card form needs ALL messages, not just keys
	if m.uiState.Mode() == state.CardFormMode {
		return m.updateCardForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	}

	return m, nil
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.updateNormalMode(msg)
	case state.MoveCardMode:
		return m.updateMoveCardMode(msg)
	case state.AddListMode, state.RenameListMode:
		return m.updateInputMode(msg)
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(msg)
	case state.DeleteListConfirmMode:
		return m.updateDeleteListConfirm(msg)
	case state.DiscardConfirmMode:
		return m.updateDiscardConfirm(msg)
	case state.CardDetailMode:
		return m.updateCardDetailMode(msg)
	case state.HelpMode:
		return m.updateHelpMode(msg)
	}
	return m, nil
}

// handleWindowResize handles terminal resize events.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)

	// Update notification state with new window dimensions
	m.notificationState.SetWindowSize(msg.Width, msg.Height)

	// Keep the selected list visible under the new viewport size
	m.uiState.EnsureSelectionVisible(m.uiState.SelectedList())
	return m, nil
}
