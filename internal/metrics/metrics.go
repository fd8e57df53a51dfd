package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActivitiesLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vitaltrack_activities_logged_total",
		Help: "Activities created, by category.",
	}, []string{"category"})

	PointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitaltrack_points_awarded_total",
		Help: "Points credited to users from logged activities.",
	})

	BadgesUnlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitaltrack_badges_unlocked_total",
		Help: "Badge unlock events.",
	})

	LeaderboardPublishes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitaltrack_leaderboard_publishes_total",
		Help: "Snapshots pushed to the shared leaderboard store.",
	})

	LeaderboardSyncFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitaltrack_leaderboard_sync_failures_total",
		Help: "Failed leaderboard publishes (logged and tolerated).",
	})
)
