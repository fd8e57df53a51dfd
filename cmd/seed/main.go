package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"vitaltrack/database"
	"vitaltrack/internal/repository"
	"vitaltrack/internal/utils"
)

// Standalone seeder: runs migrations, inserts the badge catalog and
// provisions the default account. Safe to run repeatedly.
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run migrations without seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	if *migrateOnly {
		return
	}

	if err := utils.SeedBadges(repository.NewBadgeRepository(db)); err != nil {
		log.Fatalf("Failed to seed badge catalog: %v", err)
	}
	user, err := utils.EnsureDefaultUser(repository.NewUserRepository(db))
	if err != nil {
		log.Fatalf("Failed to provision default user: %v", err)
	}

	log.Printf("Seed complete (default user ID: %d)", user.ID)
}
