package seeds

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

const defaultPassword = "password123"

// SeedUsers inserts an admin plus a handful of writers. Everyone gets the
// same development password.
func SeedUsers(db *gorm.DB) []models.User {
	log.Println("Seeding users...")

	hash, err := utils.HashPassword(defaultPassword)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []models.User{
		{
			ID:           utils.GenerateID(),
			Email:        "admin@scriitori.ro",
			PasswordHash: hash,
			Profile: models.UserProfile{
				DisplayName: "Irina Admin",
				Username:    "admin",
				Bio:         "Platform administrator",
			},
			Roles: pq.StringArray{models.RoleUser, models.RoleAdmin},
		},
		{
			ID:           utils.GenerateID(),
			Email:        "ana.popescu@example.com",
			PasswordHash: hash,
			Profile: models.UserProfile{
				DisplayName: "Ana Popescu",
				Username:    "ana.popescu",
				Bio:         "Scriu proză scurtă despre orașe și oameni.",
			},
			Roles: pq.StringArray{models.RoleUser},
		},
		{
			ID:           utils.GenerateID(),
			Email:        "mihai.ionescu@example.com",
			PasswordHash: hash,
			Profile: models.UserProfile{
				DisplayName: "Mihai Ionescu",
				Username:    "mihai.ionescu",
				Bio:         "Poezie și microficțiune.",
			},
			Roles: pq.StringArray{models.RoleUser},
		},
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Email, err)
		}
	}

	return users
}
