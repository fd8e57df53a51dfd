package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"vitaltrack/internal/models"
)

// ActivityRepository is the record-store surface for activities. Time windows
// are half-open [start, end). All list queries are scoped to one user.
type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByID(id uint) (*models.Activity, error)
	Update(activity *models.Activity) error
	Delete(id uint) error
	FindAllByUserID(userID uint) ([]models.Activity, error)
	FindByUserIDAndCategory(userID uint, category models.ActivityCategory) ([]models.Activity, error)
	FindRecentByUserID(userID uint, limit int) ([]models.Activity, error)
	FindByUserIDAndDateRange(userID uint, start, end time.Time) ([]models.Activity, error)
	CountByUserID(userID uint) (int64, error)
	CountByUserIDAndCategory(userID uint, category models.ActivityCategory) (int64, error)
	CountByUserIDAndDateRange(userID uint, start, end time.Time) (int64, error)
	SumPointsByUserID(userID uint) (int64, error)
	SumPointsByUserIDAndDateRange(userID uint, start, end time.Time) (int64, error)
	SumCaloriesByUserID(userID uint) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return wrapStoreErr(r.db.Create(activity).Error)
}

func (r *activityRepository) FindByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &activity, nil
}

func (r *activityRepository) Update(activity *models.Activity) error {
	return wrapStoreErr(r.db.Save(activity).Error)
}

func (r *activityRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Activity{}, id)
	if res.Error != nil {
		return wrapStoreErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *activityRepository) FindAllByUserID(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&activities).Error
	return activities, wrapStoreErr(err)
}

func (r *activityRepository) FindByUserIDAndCategory(userID uint, category models.ActivityCategory) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ? AND category = ?", userID, category).
		Order("logged_at DESC").
		Find(&activities).Error
	return activities, wrapStoreErr(err)
}

func (r *activityRepository) FindRecentByUserID(userID uint, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, wrapStoreErr(err)
}

func (r *activityRepository) FindByUserIDAndDateRange(userID uint, start, end time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at DESC").
		Find(&activities).Error
	return activities, wrapStoreErr(err)
}

func (r *activityRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, wrapStoreErr(err)
}

func (r *activityRepository) CountByUserIDAndCategory(userID uint, category models.ActivityCategory) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).
		Where("user_id = ? AND category = ?", userID, category).
		Count(&count).Error
	return count, wrapStoreErr(err)
}

func (r *activityRepository) CountByUserIDAndDateRange(userID uint, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Count(&count).Error
	return count, wrapStoreErr(err)
}

func (r *activityRepository) SumPointsByUserID(userID uint) (int64, error) {
	return r.sumColumn("points", "user_id = ?", userID)
}

func (r *activityRepository) SumPointsByUserIDAndDateRange(userID uint, start, end time.Time) (int64, error) {
	return r.sumColumn("points", "user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end)
}

func (r *activityRepository) SumCaloriesByUserID(userID uint) (int64, error) {
	return r.sumColumn("calories_burned", "user_id = ?", userID)
}

func (r *activityRepository) sumColumn(column, where string, args ...interface{}) (int64, error) {
	var total int64
	err := r.db.Model(&models.Activity{}).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column)).
		Where(where, args...).
		Scan(&total).Error
	return total, wrapStoreErr(err)
}

// wrapStoreErr translates gorm errors into the shared taxonomy.
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
}
