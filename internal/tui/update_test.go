package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/tui/state"
)

// pressKey runs one key press through the full Update dispatcher.
func pressKey(t *testing.T, m Model, key tea.Key) Model {
	t.Helper()
	newModel, _ := m.Update(tea.KeyPressMsg(key))
	return newModel.(Model)
}

// typeText sends each rune of text as its own key press.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = pressKey(t, m, tea.Key{Text: string(r), Code: r})
	}
	return m
}

// TestUpdate_WindowResize verifies terminal size reaches the UI state.
// Edge case: First WindowSizeMsg arrives before any key press.
// Security value: View stops rendering the loading placeholder.
func TestUpdate_WindowResize(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(Model)

	if m.uiState.Width() != 120 {
		t.Errorf("Width after resize = %d, want 120", m.uiState.Width())
	}
	if m.uiState.Height() != 40 {
		t.Errorf("Height after resize = %d, want 40", m.uiState.Height())
	}
}

// TestUpdate_QuitKey verifies 'q' quits from normal mode.
func TestUpdate_QuitKey(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'}))
	if cmd == nil {
		t.Fatal("Quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit key should return tea.Quit")
	}
}

// ============================================================================
// LIST FLOWS
// ============================================================================

// TestUpdate_CreateListFlow verifies the whole create list flow: open the
// prompt, type a title, confirm.
func TestUpdate_CreateListFlow(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	m = pressKey(t, m, tea.Key{Text: "C", Code: 'C'})
	if m.uiState.Mode() != state.AddListMode {
		t.Fatalf("Mode after 'C' = %v, want AddListMode", m.uiState.Mode())
	}

	m = typeText(t, m, "QA")
	if m.inputState.Buffer != "QA" {
		t.Fatalf("Buffer after typing = %q, want %q", m.inputState.Buffer, "QA")
	}

	m = pressKey(t, m, tea.Key{Code: tea.KeyEnter})

	lists := m.store.Snapshot().Lists
	if len(lists) != 2 {
		t.Fatalf("List count after confirm = %d, want 2", len(lists))
	}
	if lists[1].Title != "QA" {
		t.Errorf("New list title = %q, want %q", lists[1].Title, "QA")
	}
	if m.uiState.SelectedList() != 1 {
		t.Errorf("SelectedList after create = %d, want 1", m.uiState.SelectedList())
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after confirm = %v, want NormalMode", m.uiState.Mode())
	}
}

// TestUpdate_CreateListEmptyInput verifies confirming an empty prompt is
// a no-op.
// Edge case: User presses enter without typing anything.
// Security value: No empty list titles on the board.
func TestUpdate_CreateListEmptyInput(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	m = pressKey(t, m, tea.Key{Text: "C", Code: 'C'})
	m = pressKey(t, m, tea.Key{Code: tea.KeyEnter})

	if got := len(m.store.Snapshot().Lists); got != 1 {
		t.Errorf("List count after empty confirm = %d, want 1", got)
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after empty confirm = %v, want NormalMode", m.uiState.Mode())
	}
}

// TestUpdate_CreateListDiscardFlow verifies esc with typed input asks for
// confirmation before throwing the input away.
func TestUpdate_CreateListDiscardFlow(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	m = pressKey(t, m, tea.Key{Text: "C", Code: 'C'})
	m = typeText(t, m, "Q")
	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})

	if m.uiState.Mode() != state.DiscardConfirmMode {
		t.Fatalf("Mode after esc with input = %v, want DiscardConfirmMode", m.uiState.Mode())
	}

	// 'n' goes back to the prompt with the buffer intact
	m = pressKey(t, m, tea.Key{Text: "n", Code: 'n'})
	if m.uiState.Mode() != state.AddListMode {
		t.Fatalf("Mode after 'n' = %v, want AddListMode", m.uiState.Mode())
	}
	if m.inputState.Buffer != "Q" {
		t.Errorf("Buffer after cancelled discard = %q, want %q", m.inputState.Buffer, "Q")
	}

	// esc then 'y' throws the input away
	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})
	m = pressKey(t, m, tea.Key{Text: "y", Code: 'y'})

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after 'y' = %v, want NormalMode", m.uiState.Mode())
	}
	if m.inputState.Buffer != "" {
		t.Errorf("Buffer after discard = %q, want empty", m.inputState.Buffer)
	}
	if got := len(m.store.Snapshot().Lists); got != 1 {
		t.Errorf("List count after discard = %d, want 1", got)
	}
}

// TestUpdate_RenameListFlow verifies renaming through the prefilled prompt.
func TestUpdate_RenameListFlow(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	m = pressKey(t, m, tea.Key{Text: "R", Code: 'R'})
	if m.uiState.Mode() != state.RenameListMode {
		t.Fatalf("Mode after 'R' = %v, want RenameListMode", m.uiState.Mode())
	}
	if m.inputState.Buffer != "Por Hacer" {
		t.Fatalf("Buffer after 'R' = %q, want %q", m.inputState.Buffer, "Por Hacer")
	}

	m = typeText(t, m, "!")
	m = pressKey(t, m, tea.Key{Code: tea.KeyEnter})

	if got := m.store.Snapshot().Lists[0].Title; got != "Por Hacer!" {
		t.Errorf("List title after rename = %q, want %q", got, "Por Hacer!")
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after rename = %v, want NormalMode", m.uiState.Mode())
	}
}

// TestUpdate_RenameListEscWithoutChanges verifies esc closes the prompt
// directly when the title was not touched.
// Edge case: Buffer equals the prefilled title, so nothing is lost.
// Security value: No pointless confirmation dialog.
func TestUpdate_RenameListEscWithoutChanges(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	m = pressKey(t, m, tea.Key{Text: "R", Code: 'R'})
	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after esc without changes = %v, want NormalMode", m.uiState.Mode())
	}
	if got := m.store.Snapshot().Lists[0].Title; got != "Por Hacer" {
		t.Errorf("List title after cancelled rename = %q, want %q", got, "Por Hacer")
	}
}

// TestUpdate_DeleteListFlow verifies list deletion behind its confirmation.
func TestUpdate_DeleteListFlow(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1", "Card 2"),
		listWithCards("l2", "En Progreso"),
	))

	m = pressKey(t, m, tea.Key{Text: "X", Code: 'X'})
	if m.uiState.Mode() != state.DeleteListConfirmMode {
		t.Fatalf("Mode after 'X' = %v, want DeleteListConfirmMode", m.uiState.Mode())
	}
	if m.inputState.DeleteListCardCount != 2 {
		t.Errorf("DeleteListCardCount = %d, want 2", m.inputState.DeleteListCardCount)
	}

	m = pressKey(t, m, tea.Key{Text: "y", Code: 'y'})

	lists := m.store.Snapshot().Lists
	if len(lists) != 1 {
		t.Fatalf("List count after delete = %d, want 1", len(lists))
	}
	if lists[0].ID != "l2" {
		t.Errorf("Remaining list = %q, want %q", lists[0].ID, "l2")
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after delete = %v, want NormalMode", m.uiState.Mode())
	}
}

// TestUpdate_DeleteListDeclined verifies 'n' keeps the list.
func TestUpdate_DeleteListDeclined(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	m = pressKey(t, m, tea.Key{Text: "X", Code: 'X'})
	m = pressKey(t, m, tea.Key{Text: "n", Code: 'n'})

	if got := len(m.store.Snapshot().Lists); got != 1 {
		t.Errorf("List count after declined delete = %d, want 1", got)
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after declined delete = %v, want NormalMode", m.uiState.Mode())
	}
}

// ============================================================================
// CARD FLOWS
// ============================================================================

// TestUpdate_DeleteCardFlow verifies card deletion behind its confirmation.
func TestUpdate_DeleteCardFlow(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1", "Card 2"),
	))
	m.uiState.SetSelectedCard(0)

	m = pressKey(t, m, tea.Key{Text: "d", Code: 'd'})
	if m.uiState.Mode() != state.DeleteConfirmMode {
		t.Fatalf("Mode after 'd' = %v, want DeleteConfirmMode", m.uiState.Mode())
	}

	m = pressKey(t, m, tea.Key{Text: "y", Code: 'y'})

	cards := m.store.Snapshot().Lists[0].Cards
	if len(cards) != 1 {
		t.Fatalf("Card count after delete = %d, want 1", len(cards))
	}
	if cards[0].Title != "Card 2" {
		t.Errorf("Remaining card = %q, want %q", cards[0].Title, "Card 2")
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after delete = %v, want NormalMode", m.uiState.Mode())
	}
}

// TestUpdate_DeleteCardDeclined verifies 'n' keeps the card.
func TestUpdate_DeleteCardDeclined(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1"),
	))

	m = pressKey(t, m, tea.Key{Text: "d", Code: 'd'})
	m = pressKey(t, m, tea.Key{Text: "n", Code: 'n'})

	if got := len(m.store.Snapshot().Lists[0].Cards); got != 1 {
		t.Errorf("Card count after declined delete = %d, want 1", got)
	}
}

// TestUpdate_MoveCardFlow verifies the grab, retarget, drop sequence.
func TestUpdate_MoveCardFlow(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1", "Card 2"),
		listWithCards("l2", "En Progreso"),
	))
	m.uiState.SetSelectedCard(1)

	m = pressKey(t, m, tea.Key{Text: "m", Code: 'm'})
	if m.uiState.Mode() != state.MoveCardMode {
		t.Fatalf("Mode after 'm' = %v, want MoveCardMode", m.uiState.Mode())
	}

	m = pressKey(t, m, tea.Key{Code: tea.KeyRight})
	if m.uiState.SelectedList() != 1 {
		t.Fatalf("Target list after right = %d, want 1", m.uiState.SelectedList())
	}

	m = pressKey(t, m, tea.Key{Code: tea.KeyEnter})

	board := m.store.Snapshot()
	if got := len(board.Lists[0].Cards); got != 1 {
		t.Errorf("Source list card count after drop = %d, want 1", got)
	}
	target := board.Lists[1].Cards
	if len(target) != 1 || target[0].ID != "l1-c2" {
		t.Fatalf("Target list cards after drop = %v, want the moved card", target)
	}
	if m.drag.Dragging() {
		t.Error("Drag session should be idle after drop")
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after drop = %v, want NormalMode", m.uiState.Mode())
	}
	if m.uiState.SelectedCard() != 0 {
		t.Errorf("SelectedCard after drop = %d, want 0", m.uiState.SelectedCard())
	}
}

// TestUpdate_MoveCardCancel verifies esc puts the card back untouched.
func TestUpdate_MoveCardCancel(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1", "Card 2"),
		listWithCards("l2", "En Progreso"),
	))
	m.uiState.SetSelectedCard(1)

	m = pressKey(t, m, tea.Key{Text: "m", Code: 'm'})
	m = pressKey(t, m, tea.Key{Code: tea.KeyRight})
	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})

	board := m.store.Snapshot()
	if got := len(board.Lists[0].Cards); got != 2 {
		t.Errorf("Source list card count after cancel = %d, want 2", got)
	}
	if got := len(board.Lists[1].Cards); got != 0 {
		t.Errorf("Target list card count after cancel = %d, want 0", got)
	}
	if m.drag.Dragging() {
		t.Error("Drag session should be idle after cancel")
	}
	if m.uiState.SelectedList() != 0 {
		t.Errorf("SelectedList after cancel = %d, want 0", m.uiState.SelectedList())
	}
	if m.uiState.SelectedCard() != 1 {
		t.Errorf("SelectedCard after cancel = %d, want 1", m.uiState.SelectedCard())
	}
}

// TestUpdate_MoveCardSameListRefused verifies dropping on the source list
// changes nothing.
// Edge case: User presses enter without picking a different target.
// Security value: The board is untouched and the user gets feedback.
func TestUpdate_MoveCardSameListRefused(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1"),
		listWithCards("l2", "En Progreso"),
	))

	m = pressKey(t, m, tea.Key{Text: "m", Code: 'm'})
	m = pressKey(t, m, tea.Key{Code: tea.KeyEnter})

	board := m.store.Snapshot()
	if got := len(board.Lists[0].Cards); got != 1 {
		t.Errorf("Source list card count after refused drop = %d, want 1", got)
	}
	if m.drag.Dragging() {
		t.Error("Drag session should be idle after refused drop")
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after refused drop = %v, want NormalMode", m.uiState.Mode())
	}
	if !m.notificationState.HasAny() {
		t.Error("Expected notification for the refused drop")
	}
}

// ============================================================================
// CARD FORM FLOWS
// ============================================================================

// TestUpdate_AddCardFormSubmit verifies the full create card flow: open
// the form, type title and description, save with ctrl+s.
func TestUpdate_AddCardFormSubmit(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1"),
	))

	m = pressKey(t, m, tea.Key{Text: "a", Code: 'a'})
	if m.uiState.Mode() != state.CardFormMode {
		t.Fatalf("Mode after 'a' = %v, want CardFormMode", m.uiState.Mode())
	}

	m = typeText(t, m, "Fix")
	m = pressKey(t, m, tea.Key{Code: tea.KeyTab})
	m = typeText(t, m, "notes")

	m = pressKey(t, m, tea.Key{Code: 's', Mod: tea.ModCtrl})

	cards := m.store.Snapshot().Lists[0].Cards
	if len(cards) != 2 {
		t.Fatalf("Card count after submit = %d, want 2", len(cards))
	}
	if cards[1].Title != "Fix" {
		t.Errorf("New card title = %q, want %q", cards[1].Title, "Fix")
	}
	if cards[1].Description != "notes" {
		t.Errorf("New card description = %q, want %q", cards[1].Description, "notes")
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after submit = %v, want NormalMode", m.uiState.Mode())
	}
	if m.formState.CardForm != nil {
		t.Error("CardForm should be cleared after submit")
	}
	if m.uiState.SelectedCard() != 1 {
		t.Errorf("SelectedCard after submit = %d, want 1", m.uiState.SelectedCard())
	}
}

// TestUpdate_CardFormEmptyTitleRejected verifies saving without a title
// keeps the form open.
// Edge case: ctrl+s pressed before typing anything.
// Security value: No empty card titles on the board.
func TestUpdate_CardFormEmptyTitleRejected(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer"),
	))

	m = pressKey(t, m, tea.Key{Text: "a", Code: 'a'})
	m = pressKey(t, m, tea.Key{Code: 's', Mod: tea.ModCtrl})

	if m.uiState.Mode() != state.CardFormMode {
		t.Errorf("Mode after rejected submit = %v, want CardFormMode", m.uiState.Mode())
	}
	if got := len(m.store.Snapshot().Lists[0].Cards); got != 0 {
		t.Errorf("Card count after rejected submit = %d, want 0", got)
	}
	if !m.notificationState.HasAny() {
		t.Error("Expected error notification for the empty title")
	}
}

// TestUpdate_CardFormEscWithoutChanges verifies esc closes a pristine
// form directly.
func TestUpdate_CardFormEscWithoutChanges(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer"),
	))

	m = pressKey(t, m, tea.Key{Text: "a", Code: 'a'})
	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after esc = %v, want NormalMode", m.uiState.Mode())
	}
	if m.formState.CardForm != nil {
		t.Error("CardForm should be cleared after esc")
	}
}

// TestUpdate_CardFormDiscardFlow verifies esc with typed input asks for
// confirmation first.
func TestUpdate_CardFormDiscardFlow(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer"),
	))

	m = pressKey(t, m, tea.Key{Text: "a", Code: 'a'})
	m = typeText(t, m, "Q")
	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})

	if m.uiState.Mode() != state.DiscardConfirmMode {
		t.Fatalf("Mode after esc with input = %v, want DiscardConfirmMode", m.uiState.Mode())
	}

	m = pressKey(t, m, tea.Key{Text: "y", Code: 'y'})

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after discard = %v, want NormalMode", m.uiState.Mode())
	}
	if m.formState.CardForm != nil {
		t.Error("CardForm should be cleared after discard")
	}
	if got := len(m.store.Snapshot().Lists[0].Cards); got != 0 {
		t.Errorf("Card count after discard = %d, want 0", got)
	}
}

// TestUpdate_EditCardSubmit verifies the edit flow reapplies the card's
// values.
func TestUpdate_EditCardSubmit(t *testing.T) {
	list := listWithCards("l1", "Por Hacer", "Card 1")
	list.Cards[0].Description = "old notes"
	m := setupTestModel(boardWithLists(list))

	m = pressKey(t, m, tea.Key{Text: "e", Code: 'e'})
	if m.formState.FormTitle != "Card 1" {
		t.Fatalf("FormTitle after 'e' = %q, want %q", m.formState.FormTitle, "Card 1")
	}

	m = pressKey(t, m, tea.Key{Code: 's', Mod: tea.ModCtrl})

	cards := m.store.Snapshot().Lists[0].Cards
	if len(cards) != 1 {
		t.Fatalf("Card count after edit = %d, want 1", len(cards))
	}
	if cards[0].Title != "Card 1" || cards[0].Description != "old notes" {
		t.Errorf("Card after edit = %q/%q, want unchanged values", cards[0].Title, cards[0].Description)
	}
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after edit submit = %v, want NormalMode", m.uiState.Mode())
	}
}

// ============================================================================
// OVERLAYS
// ============================================================================

// TestUpdate_HelpOpenClose verifies the help overlay opens and closes.
func TestUpdate_HelpOpenClose(t *testing.T) {
	m := setupTestModel(boardWithLists(listWithCards("l1", "Por Hacer")))

	m = pressKey(t, m, tea.Key{Text: "?", Code: '?'})
	if m.uiState.Mode() != state.HelpMode {
		t.Fatalf("Mode after '?' = %v, want HelpMode", m.uiState.Mode())
	}

	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after esc = %v, want NormalMode", m.uiState.Mode())
	}
}

// TestUpdate_CardDetailOpenClose verifies the detail view opens with the
// space key and closes again.
func TestUpdate_CardDetailOpenClose(t *testing.T) {
	m := setupTestModel(boardWithLists(
		listWithCards("l1", "Por Hacer", "Card 1"),
	))

	m = pressKey(t, m, tea.Key{Text: " ", Code: tea.KeySpace})
	if m.uiState.Mode() != state.CardDetailMode {
		t.Fatalf("Mode after space = %v, want CardDetailMode", m.uiState.Mode())
	}

	m = pressKey(t, m, tea.Key{Code: tea.KeyEsc})
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("Mode after esc = %v, want NormalMode", m.uiState.Mode())
	}
}
