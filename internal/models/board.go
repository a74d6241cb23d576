package models

import "github.com/google/uuid"

// Default list titles for a fresh board, in workflow order.
const (
	DefaultListTodo       = "Por Hacer"
	DefaultListInProgress = "En Progreso"
	DefaultListDone       = "Completado"
)

// DefaultBoardTitle is the title given to a board created from scratch.
const DefaultBoardTitle = "Tablero"

// Board is the top-level container of ordered lists
// Snapshots handed out by the board store are immutable by convention:
// readers must not modify the tree they are given.
type Board struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Lists []List `json:"lists"`
}

// NewBoard creates an empty board with a fresh identity.
func NewBoard(title string) *Board {
	return &Board{
		ID:    uuid.NewString(),
		Title: title,
		Lists: []List{},
	}
}

// DefaultBoard returns the board used when no persisted snapshot can be
// restored: three empty lists covering the default workflow.
func DefaultBoard() *Board {
	seq := NewIDSequence()
	board := NewBoard(DefaultBoardTitle)
	for _, title := range []string{DefaultListTodo, DefaultListInProgress, DefaultListDone} {
		board.Lists = append(board.Lists, List{
			ID:    seq.Next(),
			Title: title,
			Cards: []Card{},
		})
	}
	return board
}

// ListIndex returns the position of the list with the given ID, or -1
// if the board does not contain it.
func (b *Board) ListIndex(listID string) int {
	for i := range b.Lists {
		if b.Lists[i].ID == listID {
			return i
		}
	}
	return -1
}

// FindList returns the list with the given ID, or nil. The returned
// pointer aliases the board's tree; callers must not modify it.
func (b *Board) FindList(listID string) *List {
	if i := b.ListIndex(listID); i >= 0 {
		return &b.Lists[i]
	}
	return nil
}

// CardCount returns the total number of cards across all lists.
func (b *Board) CardCount() int {
	n := 0
	for i := range b.Lists {
		n += len(b.Lists[i].Cards)
	}
	return n
}

// Clone returns a deep copy of the board. Mutating the copy never
// affects the original tree.
func (b *Board) Clone() *Board {
	clone := *b
	clone.Lists = make([]List, len(b.Lists))
	for i, list := range b.Lists {
		clone.Lists[i] = list.Clone()
	}
	return &clone
}
