package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/tui/components"
	"github.com/jdromero/tablero/internal/tui/state"
)

// viewBoard renders the board: title bar, visible lists, status bar.
func (m Model) viewBoard() string {
	board := m.store.Snapshot()
	lists := board.Lists

	titleBar := components.TitleStyle.Render(board.Title)
	footer := components.RenderStatusBar(m.statusBarProps())

	// Handle empty board edge case
	if len(lists) == 0 {
		emptyMsg := fmt.Sprintf("No lists. Press %s to create one.", m.config.KeyMappings.CreateList)
		return lipgloss.JoinVertical(
			lipgloss.Left,
			titleBar,
			"",
			emptyMsg,
			"",
			footer,
		)
	}

	// Calculate visible lists based on viewport
	endIdx := min(m.uiState.ViewportOffset()+m.uiState.ViewportSize(), len(lists))
	visibleLists := lists[m.uiState.ViewportOffset():endIdx]

	listHeight := m.uiState.ContentHeight()

	// Only the grabbed card carries the move indicator
	grabbedCardID := ""
	if m.drag.Dragging() {
		grabbedCardID = m.drag.Card().ID
	}

	var rendered []string
	for i, list := range visibleLists {
		// Global index for selection check
		globalIndex := m.uiState.ViewportOffset() + i
		isSelected := globalIndex == m.uiState.SelectedList()

		// Only the selected list shows a selected card
		selectedCardIdx := -1
		if isSelected {
			selectedCardIdx = m.uiState.SelectedCard()
		}

		scrollOffset := m.uiState.CardScrollOffset(list.ID)

		rendered = append(rendered, components.RenderList(list, isSelected, selectedCardIdx, listHeight, scrollOffset, grabbedCardID))
	}

	// Scroll indicators for lists beyond the viewport
	leftArrow := " "
	rightArrow := " "
	if m.uiState.ViewportOffset() > 0 {
		leftArrow = "◀"
	}
	if m.uiState.ViewportOffset()+m.uiState.ViewportSize() < len(lists) {
		rightArrow = "▶"
	}

	listsView := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	boardView := lipgloss.JoinHorizontal(lipgloss.Top, leftArrow, " ", listsView, " ", rightArrow)

	// Build content (everything except footer)
	content := lipgloss.JoinVertical(lipgloss.Left, titleBar, "", boardView, "")

	// Constrain content to fit terminal height, leaving room for the footer
	contentLines := strings.Split(content, "\n")
	maxContentLines := max(m.uiState.Height()-1, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}

	return strings.Join(contentLines, "\n") + "\n" + footer
}

// statusBarProps picks the footer text for the current mode.
func (m Model) statusBarProps() components.StatusBarProps {
	props := components.StatusBarProps{Width: m.uiState.Width()}

	if m.uiState.Mode() == state.MoveCardMode && m.drag.Dragging() {
		props.Left = fmt.Sprintf("Moving: %s", m.drag.Card().Title)
		props.Right = "[h/l] pick target  [enter] drop  [esc] cancel"
		return props
	}

	board := m.store.Snapshot()
	props.Left = fmt.Sprintf("%d lists  |  %d cards", len(board.Lists), board.CardCount())
	return props
}
