package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func (r *ChallengeRepository) FindByID(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.First(&challenge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

func (r *ChallengeRepository) FindAll() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := r.db.Order("created_at desc").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *ChallengeRepository) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *ChallengeRepository) Update(id string, patch map[string]interface{}) (*models.Challenge, error) {
	if err := r.db.Model(&models.Challenge{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ChallengeRepository) Remove(id string) error {
	return r.db.Delete(&models.Challenge{}, "id = ?", id).Error
}
