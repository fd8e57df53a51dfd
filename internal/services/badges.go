package services

import (
	"fmt"
	"time"

	"vitaltrack/internal/metrics"
	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// BadgeEvaluator decides which catalog badges a user newly qualifies for.
// Evaluate is idempotent: an existence check guards every insert, and the
// ledger calls it inside the per-user critical section so the check-then-
// insert pair cannot race with itself.
type BadgeEvaluator struct {
	badges       repository.BadgeRepository
	achievements repository.AchievementRepository
	activities   repository.ActivityRepository
	now          func() time.Time
}

func NewBadgeEvaluator(
	badges repository.BadgeRepository,
	achievements repository.AchievementRepository,
	activities repository.ActivityRepository,
) *BadgeEvaluator {
	return &BadgeEvaluator{
		badges:       badges,
		achievements: achievements,
		activities:   activities,
		now:          time.Now,
	}
}

// Evaluate returns the achievements unlocked by this call, persisting each.
// It never mutates the user or any activity.
func (e *BadgeEvaluator) Evaluate(user *models.User) ([]models.Achievement, error) {
	catalog, err := e.badges.FindAll()
	if err != nil {
		return nil, err
	}

	var unlocked []models.Achievement
	for _, badge := range catalog {
		metric, err := e.metricFor(user, badge)
		if err != nil {
			return unlocked, err
		}
		if metric < badge.Requirement {
			continue
		}

		exists, err := e.achievements.ExistsByUserAndBadge(user.ID, badge.ID)
		if err != nil {
			return unlocked, err
		}
		if exists {
			continue
		}

		achievement := models.Achievement{
			UserID:     user.ID,
			BadgeID:    badge.ID,
			Badge:      badge,
			UnlockedAt: e.now(),
		}
		if err := e.achievements.Create(&achievement); err != nil {
			return unlocked, err
		}
		metrics.BadgesUnlocked.Inc()
		unlocked = append(unlocked, achievement)
	}

	return unlocked, nil
}

// metricFor resolves the user value a badge requirement compares against.
func (e *BadgeEvaluator) metricFor(user *models.User, badge models.Badge) (int, error) {
	switch badge.Category {
	case models.BadgeCategoryPoints:
		return user.TotalPoints, nil
	case models.BadgeCategoryStreak:
		return user.CurrentStreak, nil
	case models.BadgeCategoryExercise, models.BadgeCategoryHydration,
		models.BadgeCategoryNutrition, models.BadgeCategorySleep:
		count, err := e.activities.CountByUserIDAndCategory(user.ID, models.ActivityCategory(badge.Category))
		return int(count), err
	default:
		return 0, fmt.Errorf("unknown badge category %q", badge.Category)
	}
}
