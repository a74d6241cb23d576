package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jdromero/tablero/internal/models"
)

// BoardKey is the fixed key the whole board is stored under. Every
// save overwrites it; there is no history.
const BoardKey = "board.json"

// ErrNoSnapshot is returned by LoadBoard when no board has ever been
// saved. Callers typically fall back to the default board.
var ErrNoSnapshot = errors.New("storage: no board snapshot")

// SaveBoard writes the whole board as one JSON snapshot under BoardKey.
func SaveBoard(ctx context.Context, store Store, board *models.Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("error encoding board json: %w", err)
	}
	return store.Put(ctx, BoardKey, data)
}

// LoadBoard reads the snapshot under BoardKey back into a board.
// Returns ErrNoSnapshot when the key was never written. A snapshot
// that exists but does not parse is an error: the caller should not
// silently replace a corrupt board.
func LoadBoard(ctx context.Context, store Store) (*models.Board, error) {
	data, err := store.Get(ctx, BoardKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	var board models.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("error decoding board json: %w", err)
	}

	// JSON null and [] both decode to nil slices. Normalize so the
	// rest of the app never sees a nil Lists or Cards.
	if board.Lists == nil {
		board.Lists = []models.List{}
	}
	for i := range board.Lists {
		if board.Lists[i].Cards == nil {
			board.Lists[i].Cards = []models.Card{}
		}
	}

	return &board, nil
}
