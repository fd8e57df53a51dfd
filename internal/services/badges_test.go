package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vitaltrack/internal/mocks"
	"vitaltrack/internal/models"
)

func testCatalog() []models.Badge {
	return []models.Badge{
		{ID: 1, Name: "First Steps", Requirement: 1, Category: models.BadgeCategoryExercise, Rarity: models.RarityCommon},
		{ID: 2, Name: "Point Collector", Requirement: 1000, Category: models.BadgeCategoryPoints, Rarity: models.RarityEpic},
		{ID: 3, Name: "Week Streak", Requirement: 7, Category: models.BadgeCategoryStreak, Rarity: models.RarityEpic},
	}
}

func TestEvaluateUnlocksQualifiedBadges(t *testing.T) {
	badges := new(mocks.MockBadgeRepository)
	achievements := new(mocks.MockAchievementRepository)
	activities := new(mocks.MockActivityRepository)
	evaluator := NewBadgeEvaluator(badges, achievements, activities)

	user := &models.User{ID: 1, TotalPoints: 1200, CurrentStreak: 3}

	badges.On("FindAll").Return(testCatalog(), nil)
	activities.On("CountByUserIDAndCategory", uint(1), models.CategoryExercise).Return(int64(2), nil)
	achievements.On("ExistsByUserAndBadge", uint(1), uint(1)).Return(false, nil)
	achievements.On("ExistsByUserAndBadge", uint(1), uint(2)).Return(false, nil)
	achievements.On("Create", mock.AnythingOfType("*models.Achievement")).Return(nil)

	unlocked, err := evaluator.Evaluate(user)

	assert.NoError(t, err)
	assert.Len(t, unlocked, 2)
	assert.Equal(t, uint(1), unlocked[0].BadgeID)
	assert.Equal(t, uint(2), unlocked[1].BadgeID)
	// Streak badge not met: no existence check, no insert.
	achievements.AssertNotCalled(t, "ExistsByUserAndBadge", uint(1), uint(3))
	achievements.AssertExpectations(t)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	badges := new(mocks.MockBadgeRepository)
	achievements := new(mocks.MockAchievementRepository)
	activities := new(mocks.MockActivityRepository)
	evaluator := NewBadgeEvaluator(badges, achievements, activities)

	user := &models.User{ID: 1, TotalPoints: 1200, CurrentStreak: 10}

	badges.On("FindAll").Return(testCatalog(), nil)
	activities.On("CountByUserIDAndCategory", uint(1), models.CategoryExercise).Return(int64(5), nil)
	// Every qualified badge already has its achievement row.
	achievements.On("ExistsByUserAndBadge", uint(1), mock.AnythingOfType("uint")).Return(true, nil)

	unlocked, err := evaluator.Evaluate(user)

	assert.NoError(t, err)
	assert.Empty(t, unlocked)
	achievements.AssertNotCalled(t, "Create", mock.Anything)
}

func TestEvaluateDoesNotMutateUser(t *testing.T) {
	badges := new(mocks.MockBadgeRepository)
	achievements := new(mocks.MockAchievementRepository)
	activities := new(mocks.MockActivityRepository)
	evaluator := NewBadgeEvaluator(badges, achievements, activities)

	user := &models.User{ID: 1, TotalPoints: 400, CurrentStreak: 2, Level: 1}
	before := *user

	badges.On("FindAll").Return(testCatalog(), nil)
	activities.On("CountByUserIDAndCategory", uint(1), models.CategoryExercise).Return(int64(0), nil)

	_, err := evaluator.Evaluate(user)

	assert.NoError(t, err)
	assert.Equal(t, before, *user)
}
