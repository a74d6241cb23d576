//go:build ignore
// +build ignore

// Helper script to fill the board with demo cards
// Run with: go run add_demo_data.go

package main

import (
	"context"
	"errors"
	"log"

	"github.com/jdromero/tablero/internal/board"
	"github.com/jdromero/tablero/internal/config"
	"github.com/jdromero/tablero/internal/models"
	"github.com/jdromero/tablero/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// Start from the saved board, or the default lists
	b, err := storage.LoadBoard(ctx, store)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Fatalf("Failed to load board: %v", err)
		}
		b = models.DefaultBoard()
	}

	if len(b.Lists) < 3 {
		log.Fatal("Expected at least 3 lists (Por Hacer, En Progreso, Completado)")
	}

	boardStore := board.NewStore(b)

	// Add cards to the first list
	todoList := b.Lists[0]
	todoCards := []string{
		"Comprar pan",
		"Llamar al banco",
		"Actualizar dependencias",
	}
	for _, title := range todoCards {
		card, ok := boardStore.AddCard(todoList.ID, title)
		if !ok {
			log.Printf("Error creating card '%s'", title)
		} else {
			log.Printf("Created card: %s", card.Title)
		}
	}

	// Add cards to the second list
	doingList := b.Lists[1]
	doingCards := []string{
		"Escribir informe",
		"Revisar presupuesto",
	}
	for _, title := range doingCards {
		card, ok := boardStore.AddCard(doingList.ID, title)
		if !ok {
			log.Printf("Error creating card '%s'", title)
		} else {
			log.Printf("Created card: %s", card.Title)
		}
	}

	// Add cards to the third list
	doneList := b.Lists[2]
	doneCards := []string{
		"Pagar alquiler",
		"Enviar paquete",
	}
	for _, title := range doneCards {
		card, ok := boardStore.AddCard(doneList.ID, title)
		if !ok {
			log.Printf("Error creating card '%s'", title)
		} else {
			log.Printf("Created card: %s", card.Title)
		}
	}

	if err := storage.SaveBoard(ctx, store, boardStore.Snapshot()); err != nil {
		log.Fatalf("Failed to save board: %v", err)
	}

	log.Println("Demo data added successfully!")
}
