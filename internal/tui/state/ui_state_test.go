package state

import (
	"testing"
)

// TestCalculateViewportSize_ZeroWidth ensures viewport defaults to 1 when terminal width is 0.
// Edge case: Terminal not fully initialized yet.
// Security value: Prevents division by zero or negative viewport size.
func TestCalculateViewportSize_ZeroWidth(t *testing.T) {
	state := NewUIState()
	state.SetWidth(0)

	got := state.ViewportSize()
	if got != 1 {
		t.Errorf("ViewportSize() with width=0 = %d, want 1", got)
	}
}

// TestCalculateViewportSize_NarrowTerminal ensures viewport is at least 1 even with very small width.
// Edge case: User has extremely narrow terminal (< list width).
// Security value: Ensures minimum viewport of 1 list (prevents zero-list state).
func TestCalculateViewportSize_NarrowTerminal(t *testing.T) {
	state := NewUIState()

	// Set width smaller than one list (46 chars)
	state.SetWidth(20)

	got := state.ViewportSize()
	if got < 1 {
		t.Errorf("ViewportSize() with width=20 = %d, want >= 1", got)
	}
}

// TestScrollViewportLeft_AtBoundary ensures scroll left at offset 0 is a no-op.
// Edge case: User presses scroll-left when already at leftmost position.
// Security value: Prevents negative offset (array underflow).
func TestScrollViewportLeft_AtBoundary(t *testing.T) {
	state := NewUIState()
	state.SetViewportOffset(0)

	scrolled := state.ScrollViewportLeft()

	if scrolled {
		t.Error("ScrollViewportLeft() at offset=0 returned true, want false")
	}
	if state.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset after scroll = %d, want 0", state.ViewportOffset())
	}
}

// TestScrollViewportRight_AtBoundary ensures scroll right at last list is a no-op.
// Edge case: User presses scroll-right when viewport shows the last list.
// Security value: Prevents offset beyond list count.
func TestScrollViewportRight_AtBoundary(t *testing.T) {
	state := NewUIState()
	state.SetWidth(300)        // Large enough for 6 lists
	state.SetViewportOffset(2) // Offset at position 2

	// Total lists = 5, viewport size = 6, so offset=0 already shows all lists
	// With offset=2, trying to scroll right when (2 + 6) >= 5 should fail
	listsLen := 5

	scrolled := state.ScrollViewportRight(listsLen)

	// Should not scroll since offset(2) + viewportSize(6) = 8 >= listsLen(5)
	if scrolled {
		t.Error("ScrollViewportRight() at boundary returned true, want false")
	}
	if state.ViewportOffset() != 2 {
		t.Errorf("ViewportOffset after scroll = %d, want 2 (unchanged)", state.ViewportOffset())
	}
}

// TestAdjustViewportAfterListRemoval_EmptyLists ensures viewport resets when all lists deleted.
// Edge case: User deletes the last remaining list.
// Security value: Prevents panic on empty state.
func TestAdjustViewportAfterListRemoval_EmptyLists(t *testing.T) {
	state := NewUIState()
	state.SetViewportOffset(3) // Offset at position 3

	// Adjust after all lists are deleted
	state.AdjustViewportAfterListRemoval(0, 0)

	if state.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset after removing all lists = %d, want 0", state.ViewportOffset())
	}
}

// TestEnsureSelectionVisible_SelectionBeyondViewport ensures viewport auto-scrolls to show selection.
// Edge case: User navigates to list outside current viewport.
// Security value: Ensures selection always accessible (prevents invisible selection state).
func TestEnsureSelectionVisible_SelectionBeyondViewport(t *testing.T) {
	state := NewUIState()
	state.SetWidth(100) // Enough for 2 lists (46 chars per list + 4 reserved)
	// ViewportSize should be 2: (100 - 4) / 46 = 2

	state.SetViewportOffset(0) // Show lists 0-1

	// Select list 3 (beyond viewport)
	state.EnsureSelectionVisible(3)

	// Viewport should adjust so list 3 is visible
	// New offset should be: 3 - viewportSize + 1 = 3 - 2 + 1 = 2
	expectedOffset := 2
	if state.ViewportOffset() != expectedOffset {
		t.Errorf("ViewportOffset after EnsureSelectionVisible(3) = %d, want %d", state.ViewportOffset(), expectedOffset)
	}

	// Test left side: select list 0 when viewport is at offset 2
	state.EnsureSelectionVisible(0)
	if state.ViewportOffset() != 0 {
		t.Errorf("ViewportOffset after EnsureSelectionVisible(0) from offset=2 = %d, want 0", state.ViewportOffset())
	}
}

// TestCardScrollOffset_UnknownList ensures unset lists report offset 0.
// Edge case: Rendering a list that has never been scrolled.
// Security value: Prevents nil map reads from producing garbage offsets.
func TestCardScrollOffset_UnknownList(t *testing.T) {
	state := NewUIState()

	got := state.CardScrollOffset("1")
	if got != 0 {
		t.Errorf("CardScrollOffset() for unknown list = %d, want 0", got)
	}
}

// TestScrollCardsUp_AtTop ensures scroll up at offset 0 is a no-op.
// Edge case: User scrolls up when the first card is already visible.
// Security value: Prevents negative scroll offset.
func TestScrollCardsUp_AtTop(t *testing.T) {
	state := NewUIState()

	scrolled := state.ScrollCardsUp("1")

	if scrolled {
		t.Error("ScrollCardsUp() at offset=0 returned true, want false")
	}
	if state.CardScrollOffset("1") != 0 {
		t.Errorf("CardScrollOffset after scroll = %d, want 0", state.CardScrollOffset("1"))
	}
}

// TestScrollCardsDown_AtBottom ensures scroll down stops at the last page.
// Edge case: User scrolls down when the last card is already visible.
// Security value: Prevents offset beyond card count.
func TestScrollCardsDown_AtBottom(t *testing.T) {
	state := NewUIState()

	// 5 cards, 3 visible: max offset is 2
	if !state.ScrollCardsDown("1", 5, 3) {
		t.Fatal("ScrollCardsDown() from offset=0 returned false, want true")
	}
	if !state.ScrollCardsDown("1", 5, 3) {
		t.Fatal("ScrollCardsDown() from offset=1 returned false, want true")
	}

	scrolled := state.ScrollCardsDown("1", 5, 3)
	if scrolled {
		t.Error("ScrollCardsDown() at max offset returned true, want false")
	}
	if state.CardScrollOffset("1") != 2 {
		t.Errorf("CardScrollOffset after scrolling = %d, want 2", state.CardScrollOffset("1"))
	}
}

// TestEnsureCardVisible_SelectionBelowViewport ensures scroll follows downward navigation.
// Edge case: User navigates to a card below the visible window.
// Security value: Ensures the selected card is never rendered off-screen.
func TestEnsureCardVisible_SelectionBelowViewport(t *testing.T) {
	state := NewUIState()

	// 3 cards visible, selection moves to index 4
	state.EnsureCardVisible("1", 4, 3)

	// New offset should be: 4 - 3 + 1 = 2
	if state.CardScrollOffset("1") != 2 {
		t.Errorf("CardScrollOffset after EnsureCardVisible(4) = %d, want 2", state.CardScrollOffset("1"))
	}

	// Navigate back up to index 0
	state.EnsureCardVisible("1", 0, 3)
	if state.CardScrollOffset("1") != 0 {
		t.Errorf("CardScrollOffset after EnsureCardVisible(0) = %d, want 0", state.CardScrollOffset("1"))
	}
}

// TestContentHeight_TinyTerminal ensures content area never collapses below the minimum.
// Edge case: Terminal resized to just a few rows.
// Security value: Prevents negative heights reaching lipgloss.
func TestContentHeight_TinyTerminal(t *testing.T) {
	state := NewUIState()
	state.SetHeight(3)

	got := state.ContentHeight()
	if got != 5 {
		t.Errorf("ContentHeight() with height=3 = %d, want 5", got)
	}
}
