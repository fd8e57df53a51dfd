package services

import (
	"time"

	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// StreakTracker maintains consecutive-day activity streaks. A day counts as
// active when at least one activity was logged inside its local-calendar
// [00:00, 24:00) window; multiple logs on the same day never double-count.
// Streaks are only ever recomputed when a new activity arrives — there is no
// background decay.
type StreakTracker struct {
	activities repository.ActivityRepository
	now        func() time.Time
}

func NewStreakTracker(activities repository.ActivityRepository) *StreakTracker {
	return &StreakTracker{activities: activities, now: time.Now}
}

// RecordDay updates the user's streak for an activity logged at loggedAt.
// It must be called after the activity row is persisted, so the logged day's
// count includes it. Returns true when the streak fields changed.
//
// The caller persists the user row; this only mutates the struct.
func (t *StreakTracker) RecordDay(user *models.User, loggedAt time.Time) (bool, error) {
	day := StartOfDay(loggedAt)

	// Only a log for the current calendar day can move the streak. Backdated
	// and future-dated logs still score points but leave the streak alone: a
	// streak shrinks only when a real gap of silent days is observed.
	if !day.Equal(StartOfDay(t.now())) {
		return false, nil
	}

	todayCount, err := t.activities.CountByUserIDAndDateRange(user.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return false, err
	}
	if todayCount > 1 {
		// The day was already active before this log; nothing to extend.
		return false, nil
	}

	prevDay := day.AddDate(0, 0, -1)
	prevCount, err := t.activities.CountByUserIDAndDateRange(user.ID, prevDay, day)
	if err != nil {
		return false, err
	}

	if prevCount > 0 {
		user.CurrentStreak++
	} else {
		// A gap resets to 1, not 0: the log itself starts a new streak.
		user.CurrentStreak = 1
	}

	// Unconditional on every streak write, never skipped.
	if user.CurrentStreak > user.LongestStreak {
		user.LongestStreak = user.CurrentStreak
	}
	return true, nil
}

// Calendar boundaries use the observer's local calendar and are recomputed
// per call, never cached.

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight on Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
