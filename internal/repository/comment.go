package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
)

// DefaultCommentLimit caps how many comments a single listing returns.
const DefaultCommentLimit = 50

// CommentRepository persists comments. Every operation is scoped by the
// parent piece id, mirroring the owned sub-entity relationship.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) FindByID(pieceID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "piece_id = ? AND id = ?", pieceID, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// FindAllForPiece lists a piece's comments newest first, capped at limit.
func (r *CommentRepository) FindAllForPiece(pieceID string, limit int) ([]models.Comment, error) {
	if limit <= 0 {
		limit = DefaultCommentLimit
	}
	var comments []models.Comment
	if err := r.db.Where("piece_id = ?", pieceID).
		Order("created_at desc").
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) Remove(pieceID, commentID string) error {
	return r.db.Delete(&models.Comment{}, "piece_id = ? AND id = ?", pieceID, commentID).Error
}
