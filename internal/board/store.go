// Package board owns the live board tree and applies every mutation as
// a copy-on-write state transition over immutable snapshots.
package board

import (
	"strings"
	"time"

	"github.com/jdromero/tablero/internal/models"
)

// Clock supplies creation timestamps for new cards.
type Clock func() time.Time

// defaultClock truncates to milliseconds in UTC so timestamps survive
// the JSON round trip exactly.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Store owns the current board and applies all mutations.
//
// Every mutation deep-clones the current tree, applies the change to
// the clone, swaps the pointer and notifies subscribers with the new
// snapshot. Published snapshots are never modified afterward, so
// callers may hold on to whatever Snapshot returned.
//
// Mutations never fail with an error: an unknown ID or an empty
// trimmed title degrades to a refused transition, reported through the
// boolean result. The store is exclusively owned by the single UI
// event loop and is not safe for concurrent use.
type Store struct {
	board    *models.Board
	seq      *models.IDSequence
	now      Clock
	onChange []func(*models.Board)
}

// Option is a functional option for configuring a Store.
type Option func(*Store)

// WithClock overrides the timestamp source for new cards.
func WithClock(now Clock) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store owning a deep copy of the given board.
// A nil board starts the default three-list workflow. The ID sequence
// is advanced past every identifier already on the board, so restored
// and freshly minted IDs can never collide.
func NewStore(board *models.Board, opts ...Option) *Store {
	if board == nil {
		board = models.DefaultBoard()
	}
	s := &Store{
		board: board.Clone(),
		seq:   models.NewIDSequence(),
		now:   defaultClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.board.Lists {
		list := &s.board.Lists[i]
		s.seq.Observe(list.ID)
		for j := range list.Cards {
			s.seq.Observe(list.Cards[j].ID)
		}
	}
	return s
}

// Snapshot returns the current board tree. The tree is immutable:
// future mutations operate on fresh clones.
func (s *Store) Snapshot() *models.Board {
	return s.board
}

// OnChange registers a subscriber invoked synchronously after each
// applied transition with the post-mutation snapshot. Refused
// transitions leave the board untouched and notify nobody.
func (s *Store) OnChange(fn func(*models.Board)) {
	s.onChange = append(s.onChange, fn)
}

// apply runs one state transition: it clones the current board, hands
// the clone to fn, and publishes the clone when fn reports the change
// applied.
func (s *Store) apply(fn func(b *models.Board) bool) bool {
	next := s.board.Clone()
	if !fn(next) {
		return false
	}
	s.board = next
	for _, notify := range s.onChange {
		notify(next)
	}
	return true
}

// AddCard appends a new card with the given title to the list with the
// given ID and returns it. The transition is refused when the trimmed
// title is empty or no such list exists. The stored title is the
// trimmed text; the creation timestamp comes from the store clock.
func (s *Store) AddCard(listID, title string) (models.Card, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Card{}, false
	}

	var card models.Card
	ok := s.apply(func(b *models.Board) bool {
		list := b.FindList(listID)
		if list == nil {
			return false
		}
		card = models.Card{
			ID:        s.seq.Next(),
			Title:     title,
			CreatedAt: s.now(),
		}
		list.Cards = append(list.Cards, card)
		return true
	})
	return card, ok
}

// UpdateCard replaces the title and description of an existing card in
// place, preserving its ID, position and creation timestamp. Refused
// when the trimmed title is empty or either ID is unknown. An empty
// description clears the card's description.
func (s *Store) UpdateCard(listID, cardID, title, description string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}

	return s.apply(func(b *models.Board) bool {
		list := b.FindList(listID)
		if list == nil {
			return false
		}
		i := list.CardIndex(cardID)
		if i < 0 {
			return false
		}
		list.Cards[i].Title = title
		list.Cards[i].Description = description
		return true
	})
}

// DeleteCard removes the card with the given ID from the list with the
// given ID. Deleting a card that is not there is a refused no-op, so
// the operation is idempotent.
func (s *Store) DeleteCard(listID, cardID string) bool {
	return s.apply(func(b *models.Board) bool {
		list := b.FindList(listID)
		if list == nil {
			return false
		}
		i := list.CardIndex(cardID)
		if i < 0 {
			return false
		}
		list.Cards = append(list.Cards[:i], list.Cards[i+1:]...)
		return true
	})
}

// MoveCard relocates a card from the source list to the end of the
// target list in a single transition: no observer ever sees the card
// duplicated or missing. The move is refused when source and target
// are the same list, when the card is not in the source list, or when
// either list is unknown. A missing target list leaves the board
// unchanged rather than dropping the card.
func (s *Store) MoveCard(cardID, sourceListID, targetListID string) bool {
	if sourceListID == targetListID {
		return false
	}

	return s.apply(func(b *models.Board) bool {
		source := b.FindList(sourceListID)
		if source == nil {
			return false
		}
		target := b.FindList(targetListID)
		if target == nil {
			return false
		}
		i := source.CardIndex(cardID)
		if i < 0 {
			return false
		}
		card := source.Cards[i]
		source.Cards = append(source.Cards[:i], source.Cards[i+1:]...)
		target.Cards = append(target.Cards, card)
		return true
	})
}

// AddList appends a new empty list with the given title and returns
// it. Refused when the trimmed title is empty.
func (s *Store) AddList(title string) (models.List, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, false
	}

	var list models.List
	ok := s.apply(func(b *models.Board) bool {
		list = models.List{
			ID:    s.seq.Next(),
			Title: title,
			Cards: []models.Card{},
		}
		b.Lists = append(b.Lists, list)
		return true
	})
	return list, ok
}

// RenameList replaces the title of the list with the given ID. Refused
// when the trimmed title is empty or the list is unknown, leaving the
// current title in place.
func (s *Store) RenameList(listID, title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}

	return s.apply(func(b *models.Board) bool {
		list := b.FindList(listID)
		if list == nil {
			return false
		}
		list.Title = title
		return true
	})
}

// DeleteList removes the list with the given ID together with every
// card it holds. Deleting an unknown list is a refused no-op, so the
// operation is idempotent.
func (s *Store) DeleteList(listID string) bool {
	return s.apply(func(b *models.Board) bool {
		i := b.ListIndex(listID)
		if i < 0 {
			return false
		}
		b.Lists = append(b.Lists[:i], b.Lists[i+1:]...)
		return true
	})
}
