package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/config"
	"github.com/irinaLuta25/creative-writing-platform/internal/database"
	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/internal/seeds"
)

// Development seeder: wipes the domain tables and fills them with sample
// users, challenges, pieces, and comments.
func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Clearing tables...")
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Piece{},
		&models.Challenge{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear table for %T: %v", model, err)
		}
	}

	users := seeds.SeedUsers(db)
	admin := users[0]
	writers := users[1:]

	challenges := seeds.SeedChallenges(db, admin)
	seeds.SeedPieces(db, writers, challenges[0])

	log.Println("Seeding complete")
}
