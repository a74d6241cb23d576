package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/forms"
	"github.com/jdromero/tablero/internal/tui/state"
)

// ============================================================================
// CARD FORM HANDLERS
// ============================================================================

// updateCardForm routes every message to the card form while it is open.
// Save and cancel keys are intercepted here; everything else feeds the
// focused field so typing works.
func (m Model) updateCardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.formState.CardForm == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case m.config.KeyMappings.SaveForm:
			return m.submitCardForm()
		case "esc":
			return m.cancelCardForm()
		}
	}

	var cmd tea.Cmd
	m.formState.CardForm, cmd = m.formState.CardForm.Update(msg)

	if m.formState.CardForm.State() == forms.StateAborted {
		m.formState.ClearCardForm()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, cmd
}

// submitCardForm validates the form and applies it to the board.
func (m Model) submitCardForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.formState.FormTitle)
	description := m.formState.FormDescription

	if title == "" {
		m.notificationState.Add(state.LevelError, "Title cannot be empty")
		return m, nil
	}

	if m.formState.IsEditing() {
		m.store.UpdateCard(m.formState.EditingListID, m.formState.EditingCardID, title, description)
	} else {
		card, ok := m.store.AddCard(m.formState.EditingListID, title)
		if ok && description != "" {
			m.store.UpdateCard(m.formState.EditingListID, card.ID, title, description)
		}
		if ok {
			// Jump to the new card at the bottom of its list
			if list := m.currentList(); list != nil {
				if idx := list.CardIndex(card.ID); idx >= 0 {
					m.uiState.SetSelectedCard(idx)
					m.uiState.EnsureCardVisible(list.ID, idx, m.maxCardsVisible())
				}
			}
		}
	}

	m.formState.ClearCardForm()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// cancelCardForm closes the form, asking for confirmation first when the
// user already typed something.
func (m Model) cancelCardForm() (tea.Model, tea.Cmd) {
	if m.formState.HasFormChanges() {
		message := "Discard card?"
		if m.formState.IsEditing() {
			message = "Discard changes?"
		}
		m.uiState.SetDiscardContext(&state.DiscardContext{
			SourceMode: state.CardFormMode,
			Message:    message,
		})
		m.uiState.SetMode(state.DiscardConfirmMode)
		return m, nil
	}

	m.formState.ClearCardForm()
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}
