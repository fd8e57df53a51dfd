package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vitaltrack/internal/leaderboard"
	"vitaltrack/internal/metrics"
	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// LeaderboardProjector maps users onto the shared leaderboard store.
// Publish failures are logged and reported as ErrRemoteSync but must never
// block the flow that triggered them; readers tolerate stale snapshots
// until the next successful push.
type LeaderboardProjector struct {
	store leaderboard.Store
	now   func() time.Time
}

func NewLeaderboardProjector(store leaderboard.Store) *LeaderboardProjector {
	return &LeaderboardProjector{store: store, now: time.Now}
}

// Publish overwrites the user's snapshot in the shared store.
func (p *LeaderboardProjector) Publish(ctx context.Context, user *models.User) error {
	entry := models.LeaderboardEntry{
		UserID:        strconv.FormatUint(uint64(user.ID), 10),
		Username:      user.Name,
		TotalPoints:   user.TotalPoints,
		Level:         user.Level,
		CurrentStreak: user.CurrentStreak,
		UpdatedAt:     p.now(),
	}

	if err := p.store.Publish(ctx, entry); err != nil {
		metrics.LeaderboardSyncFailures.Inc()
		return fmt.Errorf("%w: %v", models.ErrRemoteSync, err)
	}
	metrics.LeaderboardPublishes.Inc()
	return nil
}

// Backfill republishes every known user's standing, repairing snapshots the
// shared store lost or never saw while it was unreachable. Run at boot,
// before the server starts taking traffic.
func (p *LeaderboardProjector) Backfill(ctx context.Context, users repository.UserRepository) error {
	all, err := users.FindAll()
	if err != nil {
		return err
	}
	for i := range all {
		if err := p.Publish(ctx, &all[i]); err != nil {
			return err
		}
	}
	return nil
}

// Standings returns the current snapshot set, sorted by points descending
// with stable arrival-order tie-breaks.
func (p *LeaderboardProjector) Standings(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := p.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRemoteSync, err)
	}
	return entries, nil
}

// Subscribe returns a push stream of full sorted standings, refreshed on
// every participant change. Cancel via ctx.
func (p *LeaderboardProjector) Subscribe(ctx context.Context) (<-chan []models.LeaderboardEntry, error) {
	stream, err := p.store.Subscribe(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRemoteSync, err)
	}
	return stream, nil
}
