package main

import (
	"context"
	"log"

	"crewhub/internal/config"
	"crewhub/internal/database"
	"crewhub/internal/repository"
	"crewhub/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	// Cleanup old data in dependency order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM reports")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM worker_profiles")
	db.Exec("DELETE FROM users")

	if err := seed.Run(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	log.Println("Seeding complete")
	log.Println("Admin login: admin@crewhub.com / admin")
	log.Println("Customer login: user@example.com / password123")
	log.Println("Worker logins: electrician@example.com, plumber@example.com / password123")
}
