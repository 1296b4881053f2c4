package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserProfile is the public-facing identity of a user. Pieces and comments
// embed a snapshot of it at write time, so edits here do not rewrite history.
type UserProfile struct {
	DisplayName string `json:"displayName"`
	Username    string `gorm:"index" json:"username"`
	Bio         string `json:"bio"`
}

type UserStats struct {
	PiecesCount   int `gorm:"default:0" json:"piecesCount"`
	CommentsCount int `gorm:"default:0" json:"commentsCount"`
}

type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`

	Profile UserProfile    `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	Roles   pq.StringArray `gorm:"type:text[]" json:"roles"`
	Stats   UserStats      `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// AuthorSnapshot is the denormalized author identity embedded in pieces and
// comments. It is a value copy, never a live reference.
type AuthorSnapshot struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
}

// Snapshot captures the user's identity for embedding.
func (u *User) Snapshot() AuthorSnapshot {
	return AuthorSnapshot{
		ID:          u.ID,
		DisplayName: u.Profile.DisplayName,
		Username:    u.Profile.Username,
	}
}
