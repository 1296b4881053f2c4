package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
)

type PieceRepository struct {
	db *gorm.DB
}

func NewPieceRepository(db *gorm.DB) *PieceRepository {
	return &PieceRepository{db: db}
}

func (r *PieceRepository) FindByID(id string) (*models.Piece, error) {
	var piece models.Piece
	if err := r.db.First(&piece, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &piece, nil
}

func (r *PieceRepository) FindBySlug(slug string) (*models.Piece, error) {
	var piece models.Piece
	if err := r.db.First(&piece, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &piece, nil
}

func (r *PieceRepository) FindAll() ([]models.Piece, error) {
	var pieces []models.Piece
	if err := r.db.Order("created_at desc").Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

// FindAllByChallengeID lists the pieces submitted to a challenge, newest
// first, joined on the denormalized challenge id column.
func (r *PieceRepository) FindAllByChallengeID(challengeID string) ([]models.Piece, error) {
	var pieces []models.Piece
	if err := r.db.Where("challenge_id = ?", challengeID).
		Order("created_at desc").
		Find(&pieces).Error; err != nil {
		return nil, err
	}
	return pieces, nil
}

func (r *PieceRepository) Create(piece *models.Piece) error {
	return r.db.Create(piece).Error
}

// Update merges the column patch into the stored piece and returns the
// refreshed row. Partial updates never clobber sibling fields.
func (r *PieceRepository) Update(id string, patch map[string]interface{}) (*models.Piece, error) {
	if err := r.db.Model(&models.Piece{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *PieceRepository) Remove(id string) error {
	return r.db.Delete(&models.Piece{}, "id = ?", id).Error
}

// IncrementCommentsCount adjusts the denormalized comment counter with the
// store's atomic increment. This is the only writer of that column; it is not
// wrapped in a transaction with the comment write itself, so the counter is
// approximate across partial failures.
func (r *PieceRepository) IncrementCommentsCount(id string, delta int) error {
	return r.db.Model(&models.Piece{}).Where("id = ?", id).
		UpdateColumn("stats_comments_count", gorm.Expr("stats_comments_count + ?", delta)).Error
}
