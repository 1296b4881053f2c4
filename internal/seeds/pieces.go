package seeds

import (
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

var genres = []models.Genre{
	{ID: "proza-scurta", Name: "Proză scurtă"},
	{ID: "poezie", Name: "Poezie"},
	{ID: "eseu", Name: "Eseu"},
}

func sampleBody(sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = "Orașul se trezea încet sub o lumină subțire de decembrie."
	}
	return strings.Join(parts, " ")
}

// SeedPieces inserts a few pieces per writer, one of them attached to the
// open challenge, with comments and consistent counters.
func SeedPieces(db *gorm.DB, writers []models.User, open models.Challenge) {
	log.Println("Seeding pieces and comments...")

	for wi, writer := range writers {
		for p := 0; p < 2; p++ {
			title := fmt.Sprintf("Fragment %d de %s", p+1, writer.Profile.DisplayName)
			body := sampleBody(12 + p*8)
			words := utils.WordCount(body)

			piece := models.Piece{
				ID:    utils.GenerateID(),
				Title: title,
				Slug:  utils.NewSlug(title),
				Content: models.PieceContent{
					Body:           body,
					Excerpt:        utils.Excerpt(body, 200),
					Language:       "ro",
					ReadingTimeMin: utils.ReadingTime(words),
				},
				Classification: models.Classification{
					Genre: genres[(wi+p)%len(genres)],
					Tags:  pq.StringArray{"iarnă", "oraș"},
				},
				Author:          writer.Snapshot(),
				Stats:           models.PieceStats{Words: words},
				CommentsPreview: []models.CommentPreview{},
				CreatedBy:       writer.ID,
			}

			// First piece of the first writer goes to the open challenge.
			if wi == 0 && p == 0 {
				piece.ChallengeID = &open.ID
				piece.Challenge = open.Snapshot()
			}

			if err := db.Create(&piece).Error; err != nil {
				log.Fatalf("Failed to seed piece %s: %v", title, err)
			}

			// One comment from the other writer, counter kept in sync.
			other := writers[(wi+1)%len(writers)]
			comment := models.Comment{
				ID:      utils.GenerateID(),
				PieceID: piece.ID,
				Author:  other.Snapshot(),
				Content: models.CommentContent{
					Text:     "Îmi place ritmul frazelor, mai ales finalul.",
					Mentions: pq.StringArray{},
				},
				Moderation: models.CommentModeration{Status: models.ModerationVisible},
				CreatedBy:  other.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				log.Fatalf("Failed to seed comment: %v", err)
			}

			db.Model(&models.Piece{}).Where("id = ?", piece.ID).
				UpdateColumn("stats_comments_count", gorm.Expr("stats_comments_count + ?", 1))
			db.Model(&models.User{}).Where("id = ?", writer.ID).
				UpdateColumn("stats_pieces_count", gorm.Expr("stats_pieces_count + ?", 1))
			db.Model(&models.User{}).Where("id = ?", other.ID).
				UpdateColumn("stats_comments_count", gorm.Expr("stats_comments_count + ?", 1))
		}
	}
}
