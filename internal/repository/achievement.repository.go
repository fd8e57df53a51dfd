package repository

import (
	"errors"

	"gorm.io/gorm"

	"vitaltrack/internal/models"
)

type AchievementRepository interface {
	Create(achievement *models.Achievement) error
	FindByUserID(userID uint) ([]models.Achievement, error)
	ExistsByUserAndBadge(userID, badgeID uint) (bool, error)
	CountByUserID(userID uint) (int64, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db}
}

func (r *achievementRepository) Create(achievement *models.Achievement) error {
	return wrapStoreErr(r.db.Create(achievement).Error)
}

func (r *achievementRepository) FindByUserID(userID uint) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.Preload("Badge").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&achievements).Error
	return achievements, wrapStoreErr(err)
}

func (r *achievementRepository) ExistsByUserAndBadge(userID, badgeID uint) (bool, error) {
	var achievement models.Achievement
	err := r.db.Select("id").
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		First(&achievement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, wrapStoreErr(err)
	}
	return true, nil
}

func (r *achievementRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Achievement{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, wrapStoreErr(err)
}
