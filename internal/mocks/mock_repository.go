package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"vitaltrack/internal/models"
)

// Shared testify mocks for the repository interfaces.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindFirst() (*models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Patch(id uint, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByID(id uint) (*models.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityRepository) Update(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockActivityRepository) FindAllByUserID(userID uint) ([]models.Activity, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByUserIDAndCategory(userID uint, category models.ActivityCategory) ([]models.Activity, error) {
	args := m.Called(userID, category)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindRecentByUserID(userID uint, limit int) ([]models.Activity, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByUserIDAndDateRange(userID uint, start, end time.Time) ([]models.Activity, error) {
	args := m.Called(userID, start, end)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) CountByUserIDAndCategory(userID uint, category models.ActivityCategory) (int64, error) {
	args := m.Called(userID, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) CountByUserIDAndDateRange(userID uint, start, end time.Time) (int64, error) {
	args := m.Called(userID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) SumPointsByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) SumPointsByUserIDAndDateRange(userID uint, start, end time.Time) (int64, error) {
	args := m.Called(userID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) SumCaloriesByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBadgeRepository struct {
	mock.Mock
}

func (m *MockBadgeRepository) Create(badge *models.Badge) error {
	args := m.Called(badge)
	return args.Error(0)
}

func (m *MockBadgeRepository) FindByID(id uint) (*models.Badge, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Badge), args.Error(1)
}

func (m *MockBadgeRepository) FindAll() ([]models.Badge, error) {
	args := m.Called()
	return args.Get(0).([]models.Badge), args.Error(1)
}

func (m *MockBadgeRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) Create(achievement *models.Achievement) error {
	args := m.Called(achievement)
	return args.Error(0)
}

func (m *MockAchievementRepository) FindByUserID(userID uint) ([]models.Achievement, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) ExistsByUserAndBadge(userID, badgeID uint) (bool, error) {
	args := m.Called(userID, badgeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) CountByUserID(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
