package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/state"
)

// ============================================================================
// MOVE MODE HANDLERS
// ============================================================================

// updateMoveCardMode handles keys while a card is grabbed. Left and right
// pick the target list, enter drops, esc puts the card back.
func (m Model) updateMoveCardMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case km.PrevList, "left":
		return m.handleMoveTargetLeft()
	case km.NextList, "right":
		return m.handleMoveTargetRight()
	case "enter", km.MoveCard:
		return m.handleDropCard()
	case "esc":
		return m.handleCancelMove()
	}

	return m, nil
}

// handleMoveTargetLeft points the drop target at the previous list.
func (m Model) handleMoveTargetLeft() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedList() > 0 {
		m.uiState.SetSelectedList(m.uiState.SelectedList() - 1)
		m.uiState.SetSelectedCard(0)
		m.uiState.EnsureSelectionVisible(m.uiState.SelectedList())
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the first list")
	}
	return m, nil
}

// handleMoveTargetRight points the drop target at the next list.
func (m Model) handleMoveTargetRight() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedList() < len(m.lists())-1 {
		m.uiState.SetSelectedList(m.uiState.SelectedList() + 1)
		m.uiState.SetSelectedCard(0)
		m.uiState.EnsureSelectionVisible(m.uiState.SelectedList())
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the last list")
	}
	return m, nil
}

// handleDropCard releases the grabbed card onto the highlighted list.
// The drag session goes idle whether or not the move applied.
func (m Model) handleDropCard() (tea.Model, tea.Cmd) {
	target := m.currentList()
	if target == nil {
		m.drag.Cancel()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	grabbedID := m.drag.Card().ID
	if m.drag.Drop(target.ID) {
		// The card landed at the end of the target list
		if list := m.currentList(); list != nil {
			if idx := list.CardIndex(grabbedID); idx >= 0 {
				m.uiState.SetSelectedCard(idx)
				m.uiState.EnsureCardVisible(list.ID, idx, m.maxCardsVisible())
			}
		}
	} else {
		m.notificationState.Add(state.LevelInfo, "Card is already in this list")
		m.reselectCard(target.ID, grabbedID)
	}

	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// handleCancelMove abandons the grab and puts the selection back on the
// card in its source list.
func (m Model) handleCancelMove() (tea.Model, tea.Cmd) {
	sourceID := m.drag.Source()
	grabbedID := m.drag.Card().ID
	m.drag.Cancel()

	if idx := m.store.Snapshot().ListIndex(sourceID); idx >= 0 {
		m.uiState.SetSelectedList(idx)
		m.uiState.EnsureSelectionVisible(idx)
	}
	m.reselectCard(sourceID, grabbedID)

	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// reselectCard points the card selection at the given card when it is
// still on the board.
func (m Model) reselectCard(listID, cardID string) {
	list := m.store.Snapshot().FindList(listID)
	if list == nil {
		return
	}
	if idx := list.CardIndex(cardID); idx >= 0 {
		m.uiState.SetSelectedCard(idx)
		m.uiState.EnsureCardVisible(list.ID, idx, m.maxCardsVisible())
	}
}
