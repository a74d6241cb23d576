package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/state"
)

// ============================================================================
// DETAIL AND HELP HANDLERS
// ============================================================================

// updateCardDetailMode handles keys while the card detail view is open.
func (m Model) updateCardDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", km.ViewCard, km.Quit:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// updateHelpMode handles keys while the help overlay is open.
func (m Model) updateHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", " ", km.ShowHelp, km.Quit:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}
