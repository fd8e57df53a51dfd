package models

// BadgeCategory selects which user metric a badge requirement compares
// against: an activity category count, total points, or the current streak.
type BadgeCategory string

const (
	BadgeCategoryExercise  BadgeCategory = "exercise"
	BadgeCategoryHydration BadgeCategory = "hydration"
	BadgeCategoryNutrition BadgeCategory = "nutrition"
	BadgeCategorySleep     BadgeCategory = "sleep"
	BadgeCategoryPoints    BadgeCategory = "points"
	BadgeCategoryStreak    BadgeCategory = "streak"
)

type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// Rank orders rarities ascending; unknown rarities sort first.
func (r BadgeRarity) Rank() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	default:
		return 0
	}
}

// Badge is an immutable catalog entry, seeded once at first run.
type Badge struct {
	ID          uint          `gorm:"primaryKey" json:"id" example:"1"`
	Name        string        `gorm:"unique" json:"name" example:"Workout Warrior"`
	Description string        `json:"description" example:"Log 25 exercise activities"`
	Icon        string        `json:"icon" example:"dumbbell"`
	Requirement int           `json:"requirement" example:"25"`
	Category    BadgeCategory `json:"category" example:"exercise"`
	Rarity      BadgeRarity   `json:"rarity" example:"rare"`
}
