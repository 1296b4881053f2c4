package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
)

// UserRepository wraps all persistence for users. The handle is injected so
// tests can swap in an in-memory database.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdateProfile merges the given column patch into the user row and returns
// the refreshed document. Sibling fields are untouched.
func (r *UserRepository) UpdateProfile(id string, patch map[string]interface{}) (*models.User, error) {
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// IncrementPiecesCount adjusts the denormalized pieces counter atomically on
// the store side.
func (r *UserRepository) IncrementPiecesCount(id string, delta int) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("stats_pieces_count", gorm.Expr("stats_pieces_count + ?", delta)).Error
}

func (r *UserRepository) IncrementCommentsCount(id string, delta int) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("stats_comments_count", gorm.Expr("stats_comments_count + ?", delta)).Error
}
