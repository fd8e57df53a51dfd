package repository

import (
	"gorm.io/gorm"

	"vitaltrack/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindFirst() (*models.User, error)
	Update(user *models.User) error
	Patch(id uint, data map[string]interface{}) error
	FindAll() ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *models.User) error {
	if user.Level < 1 {
		user.Level = 1
	}
	return wrapStoreErr(r.db.Create(user).Error)
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &user, nil
}

// FindFirst returns the oldest user row; used by the boundary to
// auto-provision a default account on first run.
func (r *userRepository) FindFirst() (*models.User, error) {
	var user models.User
	err := r.db.Order("id ASC").First(&user).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	return wrapStoreErr(r.db.Save(user).Error)
}

func (r *userRepository) Patch(id uint, data map[string]interface{}) error {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return wrapStoreErr(err)
	}
	return wrapStoreErr(r.db.Model(&user).Updates(data).Error)
}

func (r *userRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, wrapStoreErr(err)
}
