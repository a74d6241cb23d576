package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// updateNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.AddCard:
		return m.handleAddCard()
	case km.EditCard:
		return m.handleEditCard()
	case km.DeleteCard:
		return m.handleDeleteCard()
	case km.ViewCard:
		return m.handleViewCard()
	case km.MoveCard:
		return m.handleMoveCard()
	case km.CreateList:
		return m.handleCreateList()
	case km.RenameList:
		return m.handleRenameList()
	case km.DeleteList:
		return m.handleDeleteList()
	case km.PrevList, "left":
		return m.handleNavigateLeft()
	case km.NextList, "right":
		return m.handleNavigateRight()
	case km.NextCard, "down":
		return m.handleNavigateDown()
	case km.PrevCard, "up":
		return m.handleNavigateUp()
	}

	return m, nil
}

// handleShowHelp shows the help screen.
func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.uiState.SetMode(state.HelpMode)
	return m, nil
}

// handleNavigateLeft moves selection to the previous list.
func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedList() > 0 {
		m.uiState.SetSelectedList(m.uiState.SelectedList() - 1)
		m.uiState.SetSelectedCard(0)
		m.uiState.EnsureSelectionVisible(m.uiState.SelectedList())
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the first list")
	}
	return m, nil
}

// handleNavigateRight moves selection to the next list.
func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedList() < len(m.lists())-1 {
		m.uiState.SetSelectedList(m.uiState.SelectedList() + 1)
		m.uiState.SetSelectedCard(0)
		m.uiState.EnsureSelectionVisible(m.uiState.SelectedList())
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the last list")
	}
	return m, nil
}

// handleNavigateUp moves selection to the previous card.
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedCard() > 0 {
		m.uiState.SetSelectedCard(m.uiState.SelectedCard() - 1)

		// Ensure card is visible by adjusting list scroll offset
		if list := m.currentList(); list != nil {
			m.uiState.EnsureCardVisible(list.ID, m.uiState.SelectedCard(), m.maxCardsVisible())
		}
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the first card")
	}
	return m, nil
}

// handleNavigateDown moves selection to the next card.
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	list := m.currentList()
	if list == nil || len(list.Cards) == 0 {
		return m, nil
	}

	if m.uiState.SelectedCard() < len(list.Cards)-1 {
		m.uiState.SetSelectedCard(m.uiState.SelectedCard() + 1)

		// Ensure card is visible by adjusting list scroll offset
		m.uiState.EnsureCardVisible(list.ID, m.uiState.SelectedCard(), m.maxCardsVisible())
	} else {
		m.notificationState.Add(state.LevelInfo, "Already at the last card")
	}
	return m, nil
}

// handleAddCard opens the card form for a new card in the current list.
func (m Model) handleAddCard() (tea.Model, tea.Cmd) {
	list := m.currentList()
	if list == nil {
		m.notificationState.Add(state.LevelError, "No list selected")
		return m, nil
	}

	m.formState.ClearCardForm()
	m.formState.EditingListID = list.ID
	m.formState.CardForm = CreateCardForm(&m.formState.FormTitle, &m.formState.FormDescription)
	m.formState.SnapshotInitialValues()
	m.uiState.SetMode(state.CardFormMode)
	return m, m.formState.CardForm.Init()
}

// handleEditCard opens the card form pre-filled with the selected card.
func (m Model) handleEditCard() (tea.Model, tea.Cmd) {
	list := m.currentList()
	card := m.currentCard()
	if list == nil || card == nil {
		m.notificationState.Add(state.LevelError, "No card selected")
		return m, nil
	}

	m.formState.ClearCardForm()
	m.formState.EditingListID = list.ID
	m.formState.EditingCardID = card.ID
	m.formState.FormTitle = card.Title
	m.formState.FormDescription = card.Description
	m.formState.CardForm = CreateCardForm(&m.formState.FormTitle, &m.formState.FormDescription)
	m.formState.SnapshotInitialValues()
	m.uiState.SetMode(state.CardFormMode)
	return m, m.formState.CardForm.Init()
}

// handleViewCard opens the read-only detail view for the selected card.
func (m Model) handleViewCard() (tea.Model, tea.Cmd) {
	if m.currentCard() == nil {
		m.notificationState.Add(state.LevelError, "No card selected")
		return m, nil
	}
	m.uiState.SetMode(state.CardDetailMode)
	return m, nil
}

// handleDeleteCard asks for confirmation before deleting the selected card.
func (m Model) handleDeleteCard() (tea.Model, tea.Cmd) {
	if m.currentCard() == nil {
		m.notificationState.Add(state.LevelError, "No card selected")
		return m, nil
	}
	m.uiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleMoveCard grabs the selected card and enters move mode.
func (m Model) handleMoveCard() (tea.Model, tea.Cmd) {
	list := m.currentList()
	card := m.currentCard()
	if list == nil || card == nil {
		m.notificationState.Add(state.LevelError, "No card selected")
		return m, nil
	}
	if len(m.lists()) < 2 {
		m.notificationState.Add(state.LevelInfo, "No other list to move to")
		return m, nil
	}

	if m.drag.Start(card.ID, list.ID) {
		m.uiState.SetMode(state.MoveCardMode)
	}
	return m, nil
}

// handleCreateList opens the list creation prompt.
func (m Model) handleCreateList() (tea.Model, tea.Cmd) {
	m.inputState.Clear()
	m.inputState.Prompt = "New list name:"
	m.uiState.SetMode(state.AddListMode)
	return m, nil
}

// handleRenameList opens the rename prompt pre-filled with the current title.
func (m Model) handleRenameList() (tea.Model, tea.Cmd) {
	list := m.currentList()
	if list == nil {
		m.notificationState.Add(state.LevelError, "No list selected")
		return m, nil
	}

	m.inputState.Clear()
	m.inputState.Prompt = "Rename list:"
	m.inputState.Buffer = list.Title
	m.inputState.SnapshotInitialBuffer()
	m.uiState.SetMode(state.RenameListMode)
	return m, nil
}

// handleDeleteList asks for confirmation before deleting the selected list.
func (m Model) handleDeleteList() (tea.Model, tea.Cmd) {
	list := m.currentList()
	if list == nil {
		m.notificationState.Add(state.LevelError, "No list selected")
		return m, nil
	}

	// The confirmation dialog warns about the cards deleted with the list
	m.inputState.DeleteListCardCount = len(list.Cards)
	m.uiState.SetMode(state.DeleteListConfirmMode)
	return m, nil
}
