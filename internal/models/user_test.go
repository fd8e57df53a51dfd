package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	user := &User{Weight: 70, Height: 175}
	assert.InDelta(t, 22.86, user.BMI(), 0.01)

	unset := &User{Weight: 70}
	assert.Equal(t, 0.0, unset.BMI())
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		weight float64
		height float64
		want   string
	}{
		{50, 175, "Underweight"},
		{70, 175, "Normal"},
		{85, 175, "Overweight"},
		{100, 175, "Obese"},
	}

	for _, tt := range tests {
		user := &User{Weight: tt.weight, Height: tt.height}
		assert.Equal(t, tt.want, user.BMICategory(), "weight=%v", tt.weight)
	}
}

func TestParseActivityCategory(t *testing.T) {
	category, err := ParseActivityCategory("  Exercise ")
	assert.NoError(t, err)
	assert.Equal(t, CategoryExercise, category)

	_, err = ParseActivityCategory("swimming")
	assert.ErrorIs(t, err, ErrValidation)

	for _, c := range AllCategories {
		assert.True(t, c.IsValid())
	}
}
