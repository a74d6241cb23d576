package tui

import (
	"github.com/jdromero/tablero/internal/tui/forms"
)

// CreateCardForm builds the two-field form used for both creating and
// editing cards. The pointers receive the typed values as the user edits.
func CreateCardForm(title, description *string) *forms.Form {
	return forms.NewForm(
		forms.NewTextInput("Title", "Enter card title...", 100, title),
		forms.NewTextArea("Description", "Enter card description...", 500, description),
	)
}
