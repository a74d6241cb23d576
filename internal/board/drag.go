package board

import "github.com/jdromero/tablero/internal/models"

// DragSession tracks a card being moved between lists. It has exactly
// two states: idle, and dragging one card grabbed from one source
// list. Dropping always returns the session to idle whether or not the
// underlying move applied, so a failed drop never leaves a phantom
// grab behind.
type DragSession struct {
	store  *Store
	card   models.Card
	source string
	active bool
}

// NewDragSession creates an idle session applying its drops through
// the given store.
func NewDragSession(store *Store) *DragSession {
	return &DragSession{store: store}
}

// Dragging reports whether a card is currently grabbed.
func (d *DragSession) Dragging() bool {
	return d.active
}

// Card returns a copy of the grabbed card. Only meaningful while
// Dragging reports true.
func (d *DragSession) Card() models.Card {
	return d.card
}

// Source returns the ID of the list the grabbed card came from. Only
// meaningful while Dragging reports true.
func (d *DragSession) Source() string {
	return d.source
}

// Start grabs the card with the given ID from the list with the given
// ID. Refused when the list or card cannot be found on the current
// board. Starting while already dragging replaces the previous grab.
func (d *DragSession) Start(cardID, sourceListID string) bool {
	list := d.store.Snapshot().FindList(sourceListID)
	if list == nil {
		return false
	}
	i := list.CardIndex(cardID)
	if i < 0 {
		return false
	}
	d.card = list.Cards[i]
	d.source = sourceListID
	d.active = true
	return true
}

// Drop releases the grabbed card onto the list with the given ID and
// reports whether the move applied. Refused while idle. The session is
// idle afterward in every case.
func (d *DragSession) Drop(targetListID string) bool {
	if !d.active {
		return false
	}
	moved := d.store.MoveCard(d.card.ID, d.source, targetListID)
	d.reset()
	return moved
}

// Cancel abandons the grab without moving anything.
func (d *DragSession) Cancel() {
	d.reset()
}

func (d *DragSession) reset() {
	d.card = models.Card{}
	d.source = ""
	d.active = false
}
