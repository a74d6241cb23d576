package models

import (
	"strconv"
	"time"
)

// IDSequence mints board-unique identifiers for lists and cards.
//
// Identifiers derive from generation order: the sequence starts at the
// current wall clock in nanoseconds and only moves forward, so IDs
// sort by creation time and a restarted process keeps minting past the
// IDs already persisted. Values are rendered base-36 to keep them
// short. A sequence is owned by a single goroutine, like everything
// else in the editor.
type IDSequence struct {
	last int64
}

// NewIDSequence returns a sequence seeded from the current time.
func NewIDSequence() *IDSequence {
	return &IDSequence{last: time.Now().UnixNano()}
}

// Next returns a fresh identifier, strictly greater than any the
// sequence has returned or observed before.
func (s *IDSequence) Next() string {
	n := time.Now().UnixNano()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return strconv.FormatInt(n, 36)
}

// Observe advances the sequence past an existing identifier, so IDs
// restored from a snapshot can never collide with freshly minted ones.
// Identifiers that are not base-36 numbers (such as board UUIDs) are
// ignored.
func (s *IDSequence) Observe(id string) {
	n, err := strconv.ParseInt(id, 36, 64)
	if err != nil {
		return
	}
	if n > s.last {
		s.last = n
	}
}
