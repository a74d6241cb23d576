package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/tui/components"
)

// ============================================================================
// CONFIRMATION DIALOGS
// ============================================================================

// viewDeleteCardConfirm renders the card deletion confirmation dialog.
func (m Model) viewDeleteCardConfirm() string {
	card := m.currentCard()
	if card == nil {
		return m.viewBoard()
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", card.Title))

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		confirmBox,
	)
}

// viewDeleteListConfirm renders the list deletion confirmation dialog,
// warning about the cards that go with it.
func (m Model) viewDeleteListConfirm() string {
	list := m.currentList()
	if list == nil {
		return m.viewBoard()
	}

	var content string
	cardCount := m.inputState.DeleteListCardCount
	if cardCount > 0 {
		content = fmt.Sprintf(
			"Delete list '%s'?\nThis will also delete %d card(s).\n\n[y]es  [n]o",
			list.Title,
			cardCount,
		)
	} else {
		content = fmt.Sprintf("Delete list '%s'?\n\n[y]es  [n]o", list.Title)
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(content)

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		confirmBox,
	)
}

// viewDiscardConfirm renders the unsaved changes confirmation dialog.
func (m Model) viewDiscardConfirm() string {
	ctx := m.uiState.DiscardContext()
	if ctx == nil {
		return m.viewBoard()
	}

	confirmBox := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("%s\n\n[y]es  [n]o", ctx.Message))

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		confirmBox,
	)
}
