package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Left  string // Defaults to the app name when empty
	Right string // Defaults to the help hint when empty
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Tablero - Kanban Board" (or a mode hint)
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := props.Left
	if leftText == "" {
		leftText = "Tablero - Kanban Board"
	}
	rightText := props.Right
	if rightText == "" {
		rightText = "press ? for help"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
