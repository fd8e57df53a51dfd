package gamification

import "vitaltrack/internal/models"

// Scoring constants. Point values are frozen into each activity at
// creation/edit time, so changing these never rewrites history.
const (
	// ExercisePointsPerMinute rewards exercise proportionally to duration.
	ExercisePointsPerMinute = 2

	// HydrationPoints and NutritionPoints are flat per-log rewards.
	HydrationPoints = 10
	NutritionPoints = 15

	// SleepThresholdMinutes is a full night (7h); sleeping at least this
	// long earns SleepFullPoints, anything shorter SleepShortPoints.
	SleepThresholdMinutes = 420
	SleepFullPoints       = 50
	SleepShortPoints      = 25

	// ExerciseCaloriesPerMinute is the only category with a calorie estimate.
	ExerciseCaloriesPerMinute = 5
)

// CalculatePoints maps a category and duration (minutes) to points.
// Non-positive durations always score zero.
func CalculatePoints(category models.ActivityCategory, duration int) int {
	if duration <= 0 {
		return 0
	}
	switch category {
	case models.CategoryExercise:
		return duration * ExercisePointsPerMinute
	case models.CategoryHydration:
		return HydrationPoints
	case models.CategoryNutrition:
		return NutritionPoints
	case models.CategorySleep:
		if duration >= SleepThresholdMinutes {
			return SleepFullPoints
		}
		return SleepShortPoints
	default:
		return 0
	}
}

// EstimateCalories returns the calorie estimate for a logged activity.
// Only exercise burns calories in this model.
func EstimateCalories(category models.ActivityCategory, duration int) int {
	if duration <= 0 {
		return 0
	}
	if category == models.CategoryExercise {
		return duration * ExerciseCaloriesPerMinute
	}
	return 0
}
