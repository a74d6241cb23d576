package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/models"
	"github.com/jdromero/tablero/internal/tui/theme"
)

// RenderList renders a complete list with its title and cards
// This is a pure, reusable component that composes individual card components
//
// Layout:
//
//	{List Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
//
// Parameters:
//   - list: The list to render
//   - selected: Whether this list is currently selected
//   - selectedCardIdx: Index of selected card in this list (-1 if not this list)
//   - height: Fixed height for the list (0 for auto)
//   - scrollOffset: Index of first visible card
//   - grabbedCardID: ID of the card being carried in a move ("" if none)
func RenderList(list models.List, selected bool, selectedCardIdx int, height int, scrollOffset int, grabbedCardID string) string {
	// Render list title with card count
	header := fmt.Sprintf("%s (%d)", list.Title, len(list.Cards))
	content := TitleStyle.Render(header) + "\n"

	// Render all cards in the list or show empty state
	if len(list.Cards) == 0 {
		// Empty list - show helpful message
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No cards")
	} else {
		// Calculate how many cards fit
		// List overhead breakdown:
		// - Border + Padding: 3 lines (top border(1) + bottom padding(1) + bottom border(1))
		// - Header: 1 line (list title and count)
		// - Top indicator: 1 line (empty line or "▲ more above")
		// Total: 5 lines
		const listOverhead = 5
		availableHeight := height - listOverhead
		maxVisibleCards := max(availableHeight/CardHeight, 1)

		// Always reserve space for top indicator
		if scrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n" // Empty line to maintain consistent spacing
		}

		// Calculate visible card range
		endIdx := min(scrollOffset+maxVisibleCards, len(list.Cards))
		visibleCards := list.Cards[scrollOffset:endIdx]

		// Render visible cards (no separators - cards are adjacent)
		for i, card := range visibleCards {
			// Card is selected if this is the selected list and matches the actual index
			actualIdx := scrollOffset + i
			isCardSelected := selected && actualIdx == selectedCardIdx
			isGrabbed := grabbedCardID != "" && card.ID == grabbedCardID
			content += RenderCard(card, isCardSelected, isGrabbed)
		}

		// Calculate padding to push the bottom indicator flush to the bottom.
		//
		// The height parameter is the TOTAL box height (including borders and padding).
		// ListStyle adds: TopBorder(1) + BottomPadding(1) + BottomBorder(1) = 3 lines
		// Therefore, available content height = height - 3
		//
		// Content lines used so far:
		// - Header: 1 line
		// - Top indicator: 1 line (empty or "▲ more above")
		// - Cards: len(visibleCards) * CardHeight lines
		// - Bottom indicator: 2 lines (newline + text, if present)

		usedLines := 1 + 1 + (len(visibleCards) * CardHeight)

		hasBottomIndicator := endIdx < len(list.Cards)
		var bottomIndicatorLines int
		if hasBottomIndicator {
			bottomIndicatorLines = 2 // newline + indicator text
		}

		contentHeight := height - 3
		remainingLines := contentHeight - usedLines - bottomIndicatorLines

		// Add padding newlines to fill space
		if remainingLines > 0 {
			content += strings.Repeat("\n", remainingLines)
		}

		// Add bottom indicator if needed (newline + indicator text = 2 lines)
		if hasBottomIndicator {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	// Apply list styling with selection highlight and fixed height
	style := ListStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(height - 2)
	}

	return style.Render(content)
}
