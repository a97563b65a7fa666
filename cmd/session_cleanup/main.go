package main

import (
	"context"
	"log"
	"os"

	"crewhub/internal/database"
	"crewhub/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewSessionRepository(db)
	removed, err := sessions.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("session cleanup failed: %v", err)
	}

	log.Printf("session cleanup completed: removed=%d", removed)
}
