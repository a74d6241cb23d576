// Package tui implements the terminal user interface for the board.
// It follows the Model-View-Update pattern: Model holds all state,
// Update reacts to messages and View renders the current state.
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/board"
	"github.com/jdromero/tablero/internal/config"
	"github.com/jdromero/tablero/internal/models"
	"github.com/jdromero/tablero/internal/tui/components"
	"github.com/jdromero/tablero/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	store  *board.Store
	drag   *board.DragSession
	config *config.Config

	uiState           *state.UIState
	inputState        *state.InputState
	formState         *state.FormState
	notificationState *state.NotificationState
}

// NewModel creates and initializes the TUI model on top of the board store.
// All mutations flow through the store; persistence is wired to the
// store's change notifications by the caller, so the model never talks
// to storage directly.
func NewModel(store *board.Store, cfg *config.Config) Model {
	return Model{
		store:             store,
		drag:              board.NewDragSession(store),
		config:            cfg,
		uiState:           state.NewUIState(),
		inputState:        state.NewInputState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// lists returns the lists of the current board snapshot.
func (m Model) lists() []models.List {
	return m.store.Snapshot().Lists
}

// currentList returns the currently selected list
// Returns nil if there are no lists
func (m Model) currentList() *models.List {
	lists := m.lists()
	if len(lists) == 0 {
		return nil
	}
	idx := m.uiState.SelectedList()
	if idx >= len(lists) {
		return nil
	}
	return &lists[idx]
}

// currentCard returns the currently selected card
// Returns nil if the current list is empty or no lists exist
func (m Model) currentCard() *models.Card {
	list := m.currentList()
	if list == nil {
		return nil
	}
	if len(list.Cards) == 0 || m.uiState.SelectedCard() >= len(list.Cards) {
		return nil
	}
	return &list.Cards[m.uiState.SelectedCard()]
}

// clampSelection keeps list and card selection within the bounds of the
// current snapshot. Called after mutations that can shrink the board.
func (m Model) clampSelection() {
	lists := m.lists()
	if len(lists) == 0 {
		m.uiState.ResetSelection()
		return
	}
	if m.uiState.SelectedList() >= len(lists) {
		m.uiState.SetSelectedList(len(lists) - 1)
	}
	cards := lists[m.uiState.SelectedList()].Cards
	if m.uiState.SelectedCard() >= len(cards) && m.uiState.SelectedCard() > 0 {
		m.uiState.SetSelectedCard(max(len(cards)-1, 0))
	}
}

// maxCardsVisible returns how many cards fit in a list at the current
// content height. Mirrors the layout math in components.RenderList.
func (m Model) maxCardsVisible() int {
	const listOverhead = 5 // Includes reserved space for top and bottom indicators
	return max((m.uiState.ContentHeight()-listOverhead)/components.CardHeight, 1)
}
