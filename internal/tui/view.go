package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/tui/notifications"
	"github.com/jdromero/tablero/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.uiState.Mode() {
	case state.DeleteConfirmMode:
		view.Content = m.viewDeleteCardConfirm()
	case state.DeleteListConfirmMode:
		view.Content = m.viewDeleteListConfirm()
	case state.DiscardConfirmMode:
		view.Content = m.viewDiscardConfirm()
	default:
		// Layer-based rendering: the board stays visible under modals
		view.Content = m.viewLayers()
	}

	return view
}

// viewLayers renders the board with any modal overlay stacked on top,
// plus floating notification layers in the top-right corner.
func (m Model) viewLayers() string {
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var modal *lipgloss.Layer
	switch m.uiState.Mode() {
	case state.CardFormMode:
		modal = m.renderCardFormLayer()
	case state.AddListMode, state.RenameListMode:
		modal = m.renderListInputLayer()
	case state.CardDetailMode:
		modal = m.renderCardDetailLayer()
	case state.HelpMode:
		modal = m.renderHelpLayer()
	}
	if modal != nil {
		layers = append(layers, modal)
	}

	layers = append(layers, m.notificationState.GetLayers(notifications.RenderFromState)...)

	canvas := lipgloss.NewCanvas(layers...)
	return canvas.Render()
}
