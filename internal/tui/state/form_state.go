package state

import (
	"github.com/jdromero/tablero/internal/tui/forms"
)

// FormState manages the card form state for the application.
// The form binds its fields to FormTitle and FormDescription through
// pointers, so the values here are always current.
type FormState struct {
	// CardForm is the active form instance (nil when no form is open)
	CardForm *forms.Form

	// EditingCardID is the ID of the card being edited ("" for a new card)
	EditingCardID string

	// EditingListID is the ID of the list that owns the card being edited,
	// or the list a new card will be added to
	EditingListID string

	// FormTitle is the bound title field value
	FormTitle string

	// FormDescription is the bound description field value
	FormDescription string

	// InitialTitle stores the original title for change detection
	InitialTitle string

	// InitialDescription stores the original description for change detection
	InitialDescription string
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{}
}

// ClearCardForm resets all card form fields to their default values.
func (s *FormState) ClearCardForm() {
	s.CardForm = nil
	s.EditingCardID = ""
	s.EditingListID = ""
	s.FormTitle = ""
	s.FormDescription = ""
	s.InitialTitle = ""
	s.InitialDescription = ""
}

// IsCardFormActive returns true if a card form is currently open.
func (s *FormState) IsCardFormActive() bool {
	return s.CardForm != nil
}

// IsEditing returns true if the form is editing an existing card
// rather than creating a new one.
func (s *FormState) IsEditing() bool {
	return s.EditingCardID != ""
}

// SnapshotInitialValues stores the current field values as the originals.
// Call this right after opening the form.
func (s *FormState) SnapshotInitialValues() {
	s.InitialTitle = s.FormTitle
	s.InitialDescription = s.FormDescription
}

// HasFormChanges returns true if either field differs from its original value.
func (s *FormState) HasFormChanges() bool {
	return s.FormTitle != s.InitialTitle || s.FormDescription != s.InitialDescription
}
