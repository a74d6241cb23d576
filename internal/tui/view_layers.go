package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/tui/components"
	"github.com/jdromero/tablero/internal/tui/layers"
	"github.com/jdromero/tablero/internal/tui/state"
	"github.com/jdromero/tablero/internal/tui/theme"
)

// ============================================================================
// MODAL LAYERS
// ============================================================================

// renderListInputLayer renders the list title prompt (create or rename) as
// a centered layer.
func (m Model) renderListInputLayer() *lipgloss.Layer {
	var inputBox string
	if m.uiState.Mode() == state.AddListMode {
		inputBox = components.CreateInputBoxStyle.
			Width(50).
			Render(fmt.Sprintf("%s\n> %s_", m.inputState.Prompt, m.inputState.Buffer))
	} else {
		// RenameListMode
		inputBox = components.EditInputBoxStyle.
			Width(50).
			Render(fmt.Sprintf("%s\n> %s_", m.inputState.Prompt, m.inputState.Buffer))
	}

	return layers.CreateCenteredLayer(inputBox, m.uiState.Width(), m.uiState.Height())
}

// renderCardFormLayer renders the card creation/edit form as a centered
// layer over the board.
func (m Model) renderCardFormLayer() *lipgloss.Layer {
	if m.formState.CardForm == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	var formTitle string
	if m.formState.IsEditing() {
		formTitle = titleStyle.Render("Edit Card")
	} else {
		formTitle = titleStyle.Render("Create New Card")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	helpText := helpStyle.Render("Ctrl+S: save  Tab: next field  Esc: cancel")

	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		formTitle,
		"",
		m.formState.CardForm.View(),
		helpText,
	)

	formBox := components.FormBoxStyle.
		Width(max(m.uiState.Width()/2, 40)).
		Render(fullContent)

	return layers.CreateCenteredLayer(formBox, m.uiState.Width(), m.uiState.Height())
}

// renderCardDetailLayer renders the read-only card view with the
// description formatted as markdown.
func (m Model) renderCardDetailLayer() *lipgloss.Layer {
	card := m.currentCard()
	if card == nil {
		return nil
	}

	boxWidth := max(m.uiState.Width()/2, 40)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	description := components.RenderDescription(components.DescriptionProps{
		Description: card.Description,
		Width:       boxWidth - 6,
	})

	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(card.Title),
		metaStyle.Render("Created "+card.CreatedAt.Format("2006-01-02 15:04")),
		"",
		description,
	)

	detailBox := components.DetailBoxStyle.
		Width(boxWidth).
		Render(fullContent)

	return layers.CreateCenteredLayer(detailBox, m.uiState.Width(), m.uiState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer.
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.uiState.Width(), m.uiState.Height())
}

// generateHelpText creates help text based on current key mappings.
func (m Model) generateHelpText() string {
	km := m.config.KeyMappings

	viewKey := km.ViewCard
	if viewKey == " " {
		viewKey = "space"
	}

	return fmt.Sprintf(`TABLERO - Keyboard Shortcuts

CARDS
  %s     Add new card
  %s     Edit selected card
  %s     Delete selected card
  %s     Move card to another list
  %s     View card details

LISTS
  %s     Create new list
  %s     Rename current list
  %s     Delete current list

NAVIGATION
  %s     Move to previous list
  %s     Move to next list
  %s     Move to previous card
  %s     Move to next card

OTHER
  %s     Show this help
  %s     Quit

Press any key to close`,
		km.AddCard,
		km.EditCard,
		km.DeleteCard,
		km.MoveCard,
		viewKey,
		km.CreateList,
		km.RenameList,
		km.DeleteList,
		km.PrevList,
		km.NextList,
		km.PrevCard,
		km.NextCard,
		km.ShowHelp,
		km.Quit,
	)
}
