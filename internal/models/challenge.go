package models

import (
	"time"

	"github.com/lib/pq"
)

type PromptConstraints struct {
	MaxWords int    `json:"maxWords"`
	Language string `json:"language"`
}

type ChallengePrompt struct {
	Text        string            `gorm:"type:text" json:"text"`
	Constraints PromptConstraints `gorm:"embedded;embeddedPrefix:constraints_" json:"constraints"`
	Tags        pq.StringArray    `gorm:"type:text[]" json:"tags"`
}

type ChallengeSchedule struct {
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}

// ChallengeAvailability carries the open/closed switch. No column default on
// IsActive: gorm would drop an explicit false from the INSERT and store true.
// The create handler owns the default instead.
type ChallengeAvailability struct {
	IsActive bool              `json:"isActive"`
	Schedule ChallengeSchedule `gorm:"embedded" json:"schedule"`
}

type ChallengeStats struct {
	SubmissionsCount int `gorm:"default:0" json:"submissionsCount"`
}

type Challenge struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`

	Title string `json:"title"`
	Slug  string `gorm:"index" json:"slug"`

	Prompt       ChallengePrompt       `gorm:"embedded;embeddedPrefix:prompt_" json:"prompt"`
	Availability ChallengeAvailability `gorm:"embedded;embeddedPrefix:availability_" json:"availability"`
	Stats        ChallengeStats        `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
}

// Snapshot freezes the challenge identity and constraints for embedding into
// a submitted piece.
func (c *Challenge) Snapshot() *ChallengeSnapshot {
	return &ChallengeSnapshot{
		ID:    c.ID,
		Title: c.Title,
		Constraints: ChallengeConstraints{
			MaxWords: c.Prompt.Constraints.MaxWords,
			Language: c.Prompt.Constraints.Language,
		},
		Tags: []string(c.Prompt.Tags),
	}
}
