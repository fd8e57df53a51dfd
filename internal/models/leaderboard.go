package models

import "time"

// LeaderboardEntry is the projection of a User pushed to the shared
// leaderboard store. It is keyed remotely by the string UserID and
// overwritten wholesale on every publish (last write wins, no merge).
// Seq is assigned by the store on a user's first publish and preserved on
// overwrites; it makes the descending-points sort stable by arrival order.
type LeaderboardEntry struct {
	UserID        string    `json:"user_id" example:"1"`
	Username      string    `json:"username" example:"Alex"`
	TotalPoints   int       `json:"total_points" example:"1250"`
	Level         int       `json:"level" example:"3"`
	CurrentStreak int       `json:"current_streak" example:"5"`
	Seq           int64     `json:"seq" example:"7"`
	UpdatedAt     time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}
