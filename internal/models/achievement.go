package models

import "time"

// Achievement is a per-user badge unlock event. The composite unique index
// backs the evaluator's no-duplicate-unlock guarantee.
type Achievement struct {
	ID         uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID     uint      `gorm:"uniqueIndex:idx_user_badge" json:"user_id" example:"1"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	BadgeID    uint      `gorm:"uniqueIndex:idx_user_badge" json:"badge_id" example:"3"`
	Badge      Badge     `gorm:"foreignKey:BadgeID;constraint:OnDelete:CASCADE" json:"badge"`
	UnlockedAt time.Time `json:"unlocked_at" example:"2023-01-01T00:00:00Z"`
}
