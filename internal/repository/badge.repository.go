package repository

import (
	"gorm.io/gorm"

	"vitaltrack/internal/models"
)

type BadgeRepository interface {
	Create(badge *models.Badge) error
	FindByID(id uint) (*models.Badge, error)
	FindAll() ([]models.Badge, error)
	Count() (int64, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db}
}

func (r *badgeRepository) Create(badge *models.Badge) error {
	return wrapStoreErr(r.db.Create(badge).Error)
}

func (r *badgeRepository) FindByID(id uint) (*models.Badge, error) {
	var badge models.Badge
	err := r.db.First(&badge, id).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &badge, nil
}

func (r *badgeRepository) FindAll() ([]models.Badge, error) {
	var badges []models.Badge
	err := r.db.Order("id ASC").Find(&badges).Error
	return badges, wrapStoreErr(err)
}

func (r *badgeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Badge{}).Count(&count).Error
	return count, wrapStoreErr(err)
}
