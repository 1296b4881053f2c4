package seeds

import (
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

// SeedChallenges inserts one open, one scheduled, and one closed challenge so
// every submission-window branch is visible in development.
func SeedChallenges(db *gorm.DB, admin models.User) []models.Challenge {
	log.Println("Seeding challenges...")

	now := time.Now()
	lastWeek := now.AddDate(0, 0, -7)
	yesterday := now.AddDate(0, 0, -1)
	nextWeek := now.AddDate(0, 0, 7)
	inTwoWeeks := now.AddDate(0, 0, 14)

	challenges := []models.Challenge{
		{
			ID:    utils.GenerateID(),
			Title: "Povești de iarnă",
			Slug:  utils.NewSlug("Povești de iarnă"),
			Prompt: models.ChallengePrompt{
				Text: "Scrie o poveste scurtă care se petrece într-o singură noapte de iarnă.",
				Constraints: models.PromptConstraints{
					MaxWords: 800,
					Language: "ro",
				},
				Tags: pq.StringArray{"iarnă", "noapte"},
			},
			Availability: models.ChallengeAvailability{
				IsActive: true,
				Schedule: models.ChallengeSchedule{StartsAt: &lastWeek, EndsAt: &nextWeek},
			},
			CreatedBy: admin.ID,
		},
		{
			ID:    utils.GenerateID(),
			Title: "Dialog în doi",
			Slug:  utils.NewSlug("Dialog în doi"),
			Prompt: models.ChallengePrompt{
				Text: "O scenă construită exclusiv din dialog, fără narator.",
				Constraints: models.PromptConstraints{
					MaxWords: 500,
					Language: "ro",
				},
				Tags: pq.StringArray{"dialog"},
			},
			Availability: models.ChallengeAvailability{
				IsActive: true,
				Schedule: models.ChallengeSchedule{StartsAt: &nextWeek, EndsAt: &inTwoWeeks},
			},
			CreatedBy: admin.ID,
		},
		{
			ID:    utils.GenerateID(),
			Title: "Scrisoarea pierdută",
			Slug:  utils.NewSlug("Scrisoarea pierdută"),
			Prompt: models.ChallengePrompt{
				Text: "O scrisoare care ajunge la destinatar cu zece ani întârziere.",
				Constraints: models.PromptConstraints{
					MaxWords: 1000,
					Language: "ro",
				},
				Tags: pq.StringArray{"epistolar"},
			},
			Availability: models.ChallengeAvailability{
				IsActive: true,
				Schedule: models.ChallengeSchedule{StartsAt: &lastWeek, EndsAt: &yesterday},
			},
			CreatedBy: admin.ID,
		},
	}

	for i := range challenges {
		if err := db.Create(&challenges[i]).Error; err != nil {
			log.Fatalf("Failed to seed challenge %s: %v", challenges[i].Title, err)
		}
	}

	return challenges
}
