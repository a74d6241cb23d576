package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// updateDeleteConfirm handles the card deletion confirmation.
func (m Model) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y":
		return m.confirmDeleteCard()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// confirmDeleteCard performs the actual card deletion.
func (m Model) confirmDeleteCard() (tea.Model, tea.Cmd) {
	list := m.currentList()
	card := m.currentCard()
	if list != nil && card != nil {
		m.store.DeleteCard(list.ID, card.ID)
		m.clampSelection()
	}
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// updateDeleteListConfirm handles the list deletion confirmation.
func (m Model) updateDeleteListConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y":
		return m.confirmDeleteList()
	case "n", "N", "esc":
		m.inputState.DeleteListCardCount = 0
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// confirmDeleteList performs the actual list deletion, cards included.
func (m Model) confirmDeleteList() (tea.Model, tea.Cmd) {
	if list := m.currentList(); list != nil {
		m.store.DeleteList(list.ID)
		m.clampSelection()
		m.uiState.AdjustViewportAfterListRemoval(m.uiState.SelectedList(), len(m.lists()))
	}
	m.inputState.DeleteListCardCount = 0
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// updateDiscardConfirm handles discard confirmation for forms and inputs.
func (m Model) updateDiscardConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.uiState.DiscardContext()
	if ctx == nil {
		// Safety: if context is missing, return to normal mode
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "y", "Y":
		return m.confirmDiscard()

	case "n", "N", "esc":
		// User cancelled, go back to where they were without clearing
		m.uiState.SetMode(ctx.SourceMode)
		m.uiState.ClearDiscardContext()
		return m, nil
	}

	return m, nil
}

// confirmDiscard throws away the pending form or input based on context.
func (m Model) confirmDiscard() (tea.Model, tea.Cmd) {
	ctx := m.uiState.DiscardContext()
	if ctx == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	switch ctx.SourceMode {
	case state.CardFormMode:
		m.formState.ClearCardForm()

	case state.AddListMode, state.RenameListMode:
		m.inputState.Clear()
	}

	m.uiState.SetMode(state.NormalMode)
	m.uiState.ClearDiscardContext()

	return m, tea.ClearScreen
}
