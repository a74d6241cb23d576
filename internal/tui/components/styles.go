// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/config"
	"github.com/jdromero/tablero/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ListStyle defines the appearance of board lists
	ListStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (list names, board header)
	TitleStyle lipgloss.Style

	// FormBoxStyle defines the base style for the card form (purple border)
	FormBoxStyle lipgloss.Style

	// CreateInputBoxStyle defines the base style for creation dialogs (green border)
	CreateInputBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the base style for edit dialogs (blue border)
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// DetailBoxStyle defines the base style for the card detail view (purple border)
	DetailBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// GrabbedStyle defines the style for the card being carried in a move
	// Note that this needs its background passed in so it isn't transparent
	GrabbedStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	ListStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ListBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(40)

	// Card style
	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		BorderBackground(lipgloss.Color(colors.CardBg)).
		Background(lipgloss.Color(colors.CardBg)).
		Padding(0).
		Width(36)

	// Title style
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	// Dialog box styles
	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))

	GrabbedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		Italic(true)
}
