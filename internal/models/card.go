package models

import "time"

// Card represents a single unit of work on the board
// A card is owned by exactly one list at a time; moving it between
// lists removes it from the source and appends it to the target.
type Card struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
