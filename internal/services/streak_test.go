package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vitaltrack/internal/mocks"
	"vitaltrack/internal/models"
)

func day(t time.Time, offset int) time.Time {
	return StartOfDay(t).AddDate(0, 0, offset)
}

func TestStreakConsecutiveDaysThenGap(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 30, 0, 0, time.Local)
	repo := new(mocks.MockActivityRepository)
	tracker := NewStreakTracker(repo)
	user := &models.User{ID: 1}

	// Three consecutive active days: each log is the day's first, and the
	// previous day was active except before day one.
	for i := 0; i < 3; i++ {
		loggedAt := base.AddDate(0, 0, i)
		tracker.now = func() time.Time { return loggedAt }
		repo.On("CountByUserIDAndDateRange", uint(1), day(loggedAt, 0), day(loggedAt, 1)).Return(int64(1), nil).Once()
		prev := int64(1)
		if i == 0 {
			prev = 0
		}
		repo.On("CountByUserIDAndDateRange", uint(1), day(loggedAt, -1), day(loggedAt, 0)).Return(prev, nil).Once()

		changed, err := tracker.RecordDay(user, loggedAt)
		assert.NoError(t, err)
		assert.True(t, changed)
	}
	assert.Equal(t, 3, user.CurrentStreak)
	assert.Equal(t, 3, user.LongestStreak)

	// Two silent days, then a log on day six: the streak resets to one
	// (the log itself starts a new streak) and the longest is untouched.
	daySix := base.AddDate(0, 0, 5)
	tracker.now = func() time.Time { return daySix }
	repo.On("CountByUserIDAndDateRange", uint(1), day(daySix, 0), day(daySix, 1)).Return(int64(1), nil).Once()
	repo.On("CountByUserIDAndDateRange", uint(1), day(daySix, -1), day(daySix, 0)).Return(int64(0), nil).Once()

	changed, err := tracker.RecordDay(user, daySix)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, user.CurrentStreak)
	assert.Equal(t, 3, user.LongestStreak)

	repo.AssertExpectations(t)
}

func TestStreakSameDayLogsDoNotDoubleIncrement(t *testing.T) {
	loggedAt := time.Date(2025, 3, 10, 21, 0, 0, 0, time.Local)
	repo := new(mocks.MockActivityRepository)
	tracker := NewStreakTracker(repo)
	tracker.now = func() time.Time { return loggedAt }
	user := &models.User{ID: 1, CurrentStreak: 4, LongestStreak: 6}

	// Second log of an already-active day: only the today-count query runs.
	repo.On("CountByUserIDAndDateRange", uint(1), day(loggedAt, 0), day(loggedAt, 1)).Return(int64(2), nil).Once()

	changed, err := tracker.RecordDay(user, loggedAt)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 4, user.CurrentStreak)
	assert.Equal(t, 6, user.LongestStreak)

	repo.AssertExpectations(t)
}

func TestStreakLongestNeverDecreases(t *testing.T) {
	loggedAt := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	repo := new(mocks.MockActivityRepository)
	tracker := NewStreakTracker(repo)
	tracker.now = func() time.Time { return loggedAt }

	// Extending past the previous record pulls the longest up with it.
	user := &models.User{ID: 1, CurrentStreak: 6, LongestStreak: 6}
	repo.On("CountByUserIDAndDateRange", uint(1), day(loggedAt, 0), day(loggedAt, 1)).Return(int64(1), nil).Once()
	repo.On("CountByUserIDAndDateRange", uint(1), day(loggedAt, -1), day(loggedAt, 0)).Return(int64(1), nil).Once()

	_, err := tracker.RecordDay(user, loggedAt)
	assert.NoError(t, err)
	assert.Equal(t, 7, user.CurrentStreak)
	assert.Equal(t, 7, user.LongestStreak)

	repo.AssertExpectations(t)
}

func TestStreakIgnoresBackdatedLogs(t *testing.T) {
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	repo := new(mocks.MockActivityRepository)
	tracker := NewStreakTracker(repo)
	tracker.now = func() time.Time { return today }

	// A log backdated three days lands on a day whose previous day was
	// silent. The live streak must survive: no day-count queries run and no
	// reset happens.
	user := &models.User{ID: 1, CurrentStreak: 5, LongestStreak: 8}
	changed, err := tracker.RecordDay(user, today.AddDate(0, 0, -3))
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 5, user.CurrentStreak)
	assert.Equal(t, 8, user.LongestStreak)

	// Future-dated logs are ignored the same way.
	changed, err = tracker.RecordDay(user, today.AddDate(0, 0, 2))
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 5, user.CurrentStreak)

	repo.AssertExpectations(t)
}

func TestCalendarBoundaries(t *testing.T) {
	// Wednesday 2025-03-12 15:45 local.
	at := time.Date(2025, 3, 12, 15, 45, 0, 0, time.Local)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local), StartOfDay(at))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), StartOfWeek(at))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), StartOfMonth(at))

	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2025, 3, 16, 23, 59, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), StartOfWeek(sunday))
}
