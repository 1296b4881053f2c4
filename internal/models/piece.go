package models

import (
	"time"

	"github.com/lib/pq"
)

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Classification struct {
	Genre Genre          `gorm:"embedded;embeddedPrefix:genre_" json:"genre"`
	Tags  pq.StringArray `gorm:"type:text[]" json:"tags"`
}

type PieceContent struct {
	Body           string `gorm:"type:text" json:"body"`
	Excerpt        string `json:"excerpt"`
	Language       string `gorm:"default:'ro'" json:"language"`
	ReadingTimeMin int    `json:"readingTimeMin"`
}

type PieceStats struct {
	Words         int `gorm:"default:0" json:"words"`
	CommentsCount int `gorm:"default:0" json:"commentsCount"`
}

// ChallengeConstraints are the prompt constraints frozen into a piece when it
// is submitted to a challenge.
type ChallengeConstraints struct {
	MaxWords int    `json:"maxWords"`
	Language string `json:"language"`
}

// ChallengeSnapshot is the immutable copy of the challenge a piece was
// submitted to. Set once at creation; updates rejecting any change to it are
// enforced in the handler layer.
type ChallengeSnapshot struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Constraints ChallengeConstraints `json:"constraints"`
	Tags        []string             `json:"tags"`
}

// CommentPreview is a cache slot for the newest comments on a piece. Reserved
// in the document shape but not populated anywhere yet.
type CommentPreview struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Text        string `json:"text"`
}

type Piece struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`

	Title string `json:"title"`
	Slug  string `gorm:"index" json:"slug"`

	Content        PieceContent   `gorm:"embedded;embeddedPrefix:content_" json:"content"`
	Classification Classification `gorm:"embedded;embeddedPrefix:classification_" json:"classification"`

	Author AuthorSnapshot `gorm:"serializer:json" json:"author"`

	// ChallengeID duplicates Challenge.ID as an indexed column so pieces can
	// be filtered per challenge without unpacking the snapshot.
	ChallengeID *string            `gorm:"index" json:"-"`
	Challenge   *ChallengeSnapshot `gorm:"serializer:json" json:"challenge,omitempty"`

	Stats           PieceStats       `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	CommentsPreview []CommentPreview `gorm:"serializer:json" json:"commentsPreview"`
}
