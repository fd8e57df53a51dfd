package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name           string         `json:"name" example:"Alex"`
	Email          string         `gorm:"unique" json:"email" example:"alex@example.com"`
	Age            int            `json:"age" example:"28"`
	Weight         float64        `json:"weight" example:"70.5"`
	Height         float64        `json:"height" example:"175"`
	Phone          string         `json:"phone" example:"+6281234567890"`
	DateOfBirth    *time.Time     `json:"date_of_birth,omitempty"`
	ProfilePicture string         `json:"profile_picture,omitempty"`
	TotalPoints    int            `gorm:"default:0" json:"total_points" example:"1250"`
	Level          int            `gorm:"default:1" json:"level" example:"3"`
	CurrentStreak  int            `gorm:"default:0" json:"current_streak" example:"5"`
	LongestStreak  int            `gorm:"default:0" json:"longest_streak" example:"12"`
}

// BMI is derived, never stored. Returns 0 when height is unset.
func (u *User) BMI() float64 {
	if u.Height <= 0 {
		return 0
	}
	m := u.Height / 100
	return u.Weight / (m * m)
}

func (u *User) BMICategory() string {
	bmi := u.BMI()
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
