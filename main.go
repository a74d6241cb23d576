package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/jdromero/tablero/internal/board"
	"github.com/jdromero/tablero/internal/config"
	"github.com/jdromero/tablero/internal/logging"
	"github.com/jdromero/tablero/internal/models"
	"github.com/jdromero/tablero/internal/storage"
	"github.com/jdromero/tablero/internal/tui"
	"github.com/jdromero/tablero/internal/tui/components"
)

func main() {
	// Logs go to a file so nothing scribbles over the TUI
	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// Restore the last saved board, or start the default workflow
	b, err := storage.LoadBoard(ctx, store)
	if errors.Is(err, storage.ErrNoSnapshot) {
		slog.Info("No saved board found, starting with the default board")
		b = models.DefaultBoard()
	} else if err != nil {
		log.Fatalf("Failed to load board: %v", err)
	}

	boardStore := board.NewStore(b)

	// Persist every applied mutation as a whole-board snapshot
	boardStore.OnChange(func(snapshot *models.Board) {
		if err := storage.SaveBoard(ctx, store, snapshot); err != nil {
			slog.Error("Failed to save board", "error", err)
		}
	})

	components.InitStyles(cfg.ColorScheme)

	// Create and run Bubble Tea program
	p := tea.NewProgram(tui.NewModel(boardStore, cfg))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
