package models

import (
	"time"

	"github.com/lib/pq"
)

const ModerationVisible = "visible"

type CommentContent struct {
	Text     string         `gorm:"type:text" json:"text"`
	Mentions pq.StringArray `gorm:"type:text[]" json:"mentions"`
}

type CommentModeration struct {
	Status string `gorm:"default:'visible'" json:"status"`
}

// Comment belongs to exactly one piece. The parent piece's commentsCount is
// adjusted on create and delete as a separate, best-effort write.
type Comment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	PieceID   string    `gorm:"index" json:"pieceId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`

	Author     AuthorSnapshot    `gorm:"serializer:json" json:"author"`
	Content    CommentContent    `gorm:"embedded;embeddedPrefix:content_" json:"content"`
	Moderation CommentModeration `gorm:"embedded;embeddedPrefix:moderation_" json:"moderation"`
}
