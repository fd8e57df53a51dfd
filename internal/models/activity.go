package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ActivityCategory is the closed set of trackable activity kinds. Scoring,
// streak metrics and badge metrics all switch on it; AllCategories exists so
// tests can verify every category is handled.
type ActivityCategory string

const (
	CategoryExercise  ActivityCategory = "exercise"
	CategoryHydration ActivityCategory = "hydration"
	CategoryNutrition ActivityCategory = "nutrition"
	CategorySleep     ActivityCategory = "sleep"
)

var AllCategories = []ActivityCategory{
	CategoryExercise,
	CategoryHydration,
	CategoryNutrition,
	CategorySleep,
}

func (c ActivityCategory) IsValid() bool {
	switch c {
	case CategoryExercise, CategoryHydration, CategoryNutrition, CategorySleep:
		return true
	default:
		return false
	}
}

func ParseActivityCategory(input string) (ActivityCategory, error) {
	c := ActivityCategory(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: invalid activity category %q", ErrValidation, input)
	}
	return c, nil
}

type Activity struct {
	ID          uint             `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time        `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time        `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint             `json:"user_id" example:"1"`
	User        User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category    ActivityCategory `json:"category" example:"exercise"`
	Name        string           `json:"name" example:"Morning run"`
	Description string           `json:"description,omitempty"`
	// Points and CaloriesBurned are snapshots of the scoring rules at
	// creation/edit time and are never recomputed retroactively.
	Points         int       `json:"points" example:"60"`
	CaloriesBurned int       `json:"calories_burned" example:"150"`
	Duration       int       `json:"duration" example:"30"`
	LoggedAt       time.Time `json:"logged_at" example:"2023-01-01T07:30:00Z"`
}

// ActivityDraft is the user-supplied part of an activity; points and
// calories are always derived server-side.
type ActivityDraft struct {
	Category    string     `json:"category" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Duration    int        `json:"duration" binding:"required"`
	LoggedAt    *time.Time `json:"logged_at"`
}
