package models

// List represents one workflow stage on the board (e.g. "Por Hacer")
// Cards keep their insertion order: new cards and cards moved in from
// another list always append at the end.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// CardIndex returns the position of the card with the given ID within
// the list, or -1 if the list does not contain it.
func (l *List) CardIndex(cardID string) int {
	for i := range l.Cards {
		if l.Cards[i].ID == cardID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	clone := l
	clone.Cards = make([]Card, len(l.Cards))
	copy(clone.Cards, l.Cards)
	return clone
}
