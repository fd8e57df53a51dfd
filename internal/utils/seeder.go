package utils

import (
	"errors"
	"log"

	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// BadgeCatalog is the fixed seed list. It is inserted once at first run and
// never mutated afterwards; requirements compare against the metric named by
// each badge's category.
var BadgeCatalog = []models.Badge{
	{Name: "First Steps", Description: "Log your first exercise activity", Icon: "shoe", Requirement: 1, Category: models.BadgeCategoryExercise, Rarity: models.RarityCommon},
	{Name: "Workout Warrior", Description: "Log 25 exercise activities", Icon: "dumbbell", Requirement: 25, Category: models.BadgeCategoryExercise, Rarity: models.RarityRare},
	{Name: "Hydration Hero", Description: "Log 50 hydration activities", Icon: "droplet", Requirement: 50, Category: models.BadgeCategoryHydration, Rarity: models.RarityRare},
	{Name: "Clean Plate", Description: "Log 30 nutrition activities", Icon: "salad", Requirement: 30, Category: models.BadgeCategoryNutrition, Rarity: models.RarityRare},
	{Name: "Well Rested", Description: "Log 20 sleep activities", Icon: "moon", Requirement: 20, Category: models.BadgeCategorySleep, Rarity: models.RarityCommon},
	{Name: "Point Collector", Description: "Earn 1000 total points", Icon: "star", Requirement: 1000, Category: models.BadgeCategoryPoints, Rarity: models.RarityEpic},
	{Name: "Week Streak", Description: "Keep a 7 day streak", Icon: "flame", Requirement: 7, Category: models.BadgeCategoryStreak, Rarity: models.RarityEpic},
	{Name: "Iron Will", Description: "Keep a 30 day streak", Icon: "trophy", Requirement: 30, Category: models.BadgeCategoryStreak, Rarity: models.RarityLegendary},
}

// SeedBadges inserts the badge catalog if it has not been seeded yet.
// Idempotent: a non-empty catalog is left untouched.
func SeedBadges(badges repository.BadgeRepository) error {
	count, err := badges.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range BadgeCatalog {
		badge := BadgeCatalog[i]
		if err := badges.Create(&badge); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d badges", len(BadgeCatalog))
	return nil
}

// EnsureDefaultUser provisions the local account on first run and returns
// it. Subsequent runs return the existing row.
func EnsureDefaultUser(users repository.UserRepository) (*models.User, error) {
	user, err := users.FindFirst()
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	user = &models.User{
		Name:  "VitalTrack User",
		Email: "user@vitaltrack.local",
		Level: 1,
	}
	if err := users.Create(user); err != nil {
		return nil, err
	}
	log.Printf("Provisioned default user (ID: %d)", user.ID)
	return user, nil
}
