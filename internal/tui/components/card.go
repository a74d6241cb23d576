package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jdromero/tablero/internal/models"
	"github.com/jdromero/tablero/internal/tui/theme"
)

// RenderCard renders a single card
//
//	┃ {Card Title}        ┃
//	┃ date | description  ┃
//
// This has a fixed width and height
func RenderCard(card models.Card, selected bool, grabbed bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	title := renderCardTitle(card, bg, grabbed)
	metadataLine := renderCardMetadata(card, bg)
	content := title + metadataLine

	style := CardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))

	return style.Render(content)
}

func renderCardTitle(card models.Card, bg string, grabbed bool) string {
	var grabbedIndicator string
	if grabbed {
		grabbedIndicator = GrabbedStyle.
			Background(lipgloss.Color(bg)).
			Render("◆ ")
	}

	title := card.Title
	if len(title) >= cardTitleMaxLength {
		ellipsisStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true)
		title = title[:cardTitleMaxLength] + ellipsisStyle.Render("...")
	}

	title = padTitleForIndicator(title)

	return lipgloss.NewStyle().
		Bold(true).
		Render(" " + title + grabbedIndicator)
}

// padTitleForIndicator pads the title to ensure the grabbed indicator aligns on the right
func padTitleForIndicator(title string) string {
	if len(title) < cardTitlePaddedLength {
		return title + strings.Repeat(" ", cardTitlePaddedLength-len(title))
	}
	return title
}

// renderCardMetadata renders the creation date and a description marker
// on the same line, separated by │
func renderCardMetadata(card models.Card, bg string) string {
	dateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))
	dateDisplay := dateStyle.Render(card.CreatedAt.Format("2006-01-02"))

	var descDisplay string
	if strings.TrimSpace(card.Description) != "" {
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)).
			Background(lipgloss.Color(bg))
		descDisplay = descStyle.Render("≡ notes")
	} else {
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true)
		descDisplay = descStyle.Render("no notes")
	}

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))
	separator := separatorStyle.Render(" │ ")

	return "\n " + dateDisplay + separator + descDisplay
}
