package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode            Mode = iota // Default navigation mode
	CardFormMode                      // Adding or editing a card through the full form
	MoveCardMode                      // Carrying a grabbed card between lists
	DeleteConfirmMode                 // Confirming card deletion
	AddListMode                       // Creating a new list
	RenameListMode                    // Renaming an existing list
	DeleteListConfirmMode             // Confirming list deletion
	DiscardConfirmMode                // Confirming discard of form/input changes
	CardDetailMode                    // Reading a card's full description
	HelpMode                          // Displaying help screen
)

// DiscardContext tracks information for discard confirmation dialogs.
// It stores the mode to return to if the user cancels, and a context-specific message.
type DiscardContext struct {
	SourceMode Mode   // The mode to return to if user cancels discard (N/ESC)
	Message    string // Context-specific message (e.g., "Discard card?")
}

// UIState manages the user interface state.
// This includes navigation (list/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedList is the index of the currently selected list
	selectedList int

	// selectedCard is the index of the currently selected card within the selected list
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible list
	viewportOffset int

	// viewportSize is the number of lists that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the vertical scroll offset for each list
	// Key: listID, Value: scroll offset (index of first visible card)
	cardScrollOffsets map[string]int

	// discardContext holds context for discard confirmation dialogs
	discardContext *DiscardContext
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selectedList:      0,
		selectedCard:      0,
		width:             0,
		height:            0,
		mode:              NormalMode,
		viewportOffset:    0,
		viewportSize:      1, // Default to 1, will be recalculated when width is set
		cardScrollOffsets: make(map[string]int),
	}
}

// SelectedList returns the index of the currently selected list.
func (s *UIState) SelectedList() int {
	return s.selectedList
}

// SetSelectedList updates the selected list index.
func (s *UIState) SetSelectedList(index int) {
	s.selectedList = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the board area.
// This is terminal height minus the title bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const titleBarHeight = 2  // board title + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-titleBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible list.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of lists that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many lists can fit in the terminal width.
//
// List layout:
//   - Content width: 40 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between lists)
//   - Total per list: 46 characters
//
// The calculation reserves 4 characters for margins and scroll indicators,
// and ensures at least 1 list is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const listWidth = 46    // 40 content + 2 padding + 2 border + 2 spacing
	const reservedWidth = 4 // margins and scroll indicators

	availableWidth := s.width - reservedWidth

	// Calculate how many lists fit, with minimum of 1
	s.viewportSize = max(1, availableWidth/listWidth)
}

// AdjustViewportAfterListRemoval adjusts the viewport offset after a list is removed.
// This ensures the viewport stays within valid bounds and the selection remains visible.
//
// Parameters:
//   - selectedList: the current selected list index
//   - listsLen: the total number of lists after removal
func (s *UIState) AdjustViewportAfterListRemoval(selectedList, listsLen int) {
	if listsLen == 0 {
		s.viewportOffset = 0
		return
	}

	// If selected list is before viewport, move viewport left
	if selectedList < s.viewportOffset {
		s.viewportOffset = selectedList
	}

	// If viewport offset is now beyond available lists, adjust it
	if s.viewportOffset+s.viewportSize > listsLen {
		s.viewportOffset = max(0, listsLen-s.viewportSize)
	}
}

// ScrollViewportLeft scrolls the viewport one list to the left.
// Returns true if scrolling occurred, false if already at leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one list to the right.
// Returns true if scrolling occurred, false if already at rightmost position.
//
// Parameters:
//   - listsLen: the total number of lists
func (s *UIState) ScrollViewportRight(listsLen int) bool {
	if s.viewportOffset+s.viewportSize < listsLen {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected list is visible.
// This should be called after navigation or when the selection changes.
func (s *UIState) EnsureSelectionVisible(selectedList int) {
	// If selection is off-screen to the left, scroll left
	if selectedList < s.viewportOffset {
		s.viewportOffset = selectedList
	}

	// If selection is off-screen to the right, scroll right
	if selectedList >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedList - s.viewportSize + 1
	}
}

// ResetSelection resets both list and card selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedList = 0
	s.selectedCard = 0
	s.viewportOffset = 0
}

// DiscardContext returns the current discard context.
func (s *UIState) DiscardContext() *DiscardContext {
	return s.discardContext
}

// SetDiscardContext updates the discard context.
func (s *UIState) SetDiscardContext(ctx *DiscardContext) {
	s.discardContext = ctx
}

// ClearDiscardContext resets the discard context to nil.
func (s *UIState) ClearDiscardContext() {
	s.discardContext = nil
}

// CardScrollOffset returns the vertical scroll offset for a given list.
// Returns 0 if the list has no scroll offset set.
func (s *UIState) CardScrollOffset(listID string) int {
	if offset, ok := s.cardScrollOffsets[listID]; ok {
		return offset
	}
	return 0
}

// SetCardScrollOffset updates the vertical scroll offset for a given list.
func (s *UIState) SetCardScrollOffset(listID string, offset int) {
	s.cardScrollOffsets[listID] = max(0, offset)
}

// ScrollCardsUp moves the scroll offset up (decreases it) for a list.
// Returns true if scrolling occurred, false if already at top.
func (s *UIState) ScrollCardsUp(listID string) bool {
	offset := s.CardScrollOffset(listID)
	if offset > 0 {
		s.cardScrollOffsets[listID] = offset - 1
		return true
	}
	return false
}

// ScrollCardsDown moves the scroll offset down (increases it) for a list.
// Returns true if scrolling occurred, false if already at bottom.
//
// Parameters:
//   - listID: the list to scroll
//   - cardCount: total number of cards in the list
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) ScrollCardsDown(listID string, cardCount int, visibleCount int) bool {
	offset := s.CardScrollOffset(listID)
	maxOffset := max(0, cardCount-visibleCount)
	if offset < maxOffset {
		s.cardScrollOffsets[listID] = offset + 1
		return true
	}
	return false
}

// EnsureCardVisible adjusts the scroll offset to ensure the selected card is visible.
// This should be called after card navigation within a list.
//
// Parameters:
//   - listID: the list containing the card
//   - selectedCardIdx: index of the selected card within the list
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureCardVisible(listID string, selectedCardIdx int, visibleCount int) {
	offset := s.CardScrollOffset(listID)

	// If selection is above visible area, scroll up
	if selectedCardIdx < offset {
		s.cardScrollOffsets[listID] = selectedCardIdx
	}

	// If selection is below visible area, scroll down
	if selectedCardIdx >= offset+visibleCount {
		s.cardScrollOffsets[listID] = selectedCardIdx - visibleCount + 1
	}
}
