package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"vitaltrack/internal/gamification"
	"vitaltrack/internal/metrics"
	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// ActivityLedger orchestrates activity mutations and keeps the owning user's
// aggregates (total points, level, streaks) consistent with them.
//
// All aggregate mutations for a given user are serialized through a per-user
// mutex: two rapid activity additions cannot interleave their read-modify-
// write of the user row, and the badge evaluator's existence-check-then-
// insert runs inside the same critical section.
//
// Aggregate or sync failures after a successful activity write are not
// rolled back; the next point-affecting event self-heals the aggregates.
type ActivityLedger struct {
	users      repository.UserRepository
	activities repository.ActivityRepository
	streaks    *StreakTracker
	badges     *BadgeEvaluator
	projector  *LeaderboardProjector
	bus        *ChangeBus

	locks sync.Map // userID -> *sync.Mutex
	now   func() time.Time
}

func NewActivityLedger(
	users repository.UserRepository,
	activities repository.ActivityRepository,
	streaks *StreakTracker,
	badges *BadgeEvaluator,
	projector *LeaderboardProjector,
	bus *ChangeBus,
) *ActivityLedger {
	return &ActivityLedger{
		users:      users,
		activities: activities,
		streaks:    streaks,
		badges:     badges,
		projector:  projector,
		bus:        bus,
		now:        time.Now,
	}
}

func (l *ActivityLedger) lockUser(userID uint) func() {
	v, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func validateDraft(draft models.ActivityDraft) (models.ActivityCategory, error) {
	category, err := models.ParseActivityCategory(draft.Category)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(draft.Name) == "" {
		return "", fmt.Errorf("%w: activity name is required", models.ErrValidation)
	}
	if draft.Duration <= 0 {
		return "", fmt.Errorf("%w: duration must be positive", models.ErrValidation)
	}
	return category, nil
}

// AddActivity scores the draft, persists the activity, credits the user's
// points, raises the level if earned, extends the streak and evaluates
// badges, then publishes the new standing.
func (l *ActivityLedger) AddActivity(ctx context.Context, userID uint, draft models.ActivityDraft) (*models.Activity, error) {
	category, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	unlock := l.lockUser(userID)
	defer unlock()

	user, err := l.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	loggedAt := l.now()
	if draft.LoggedAt != nil {
		loggedAt = *draft.LoggedAt
	}

	activity := &models.Activity{
		UserID:         userID,
		Category:       category,
		Name:           strings.TrimSpace(draft.Name),
		Description:    draft.Description,
		Points:         gamification.CalculatePoints(category, draft.Duration),
		CaloriesBurned: gamification.EstimateCalories(category, draft.Duration),
		Duration:       draft.Duration,
		LoggedAt:       loggedAt,
	}
	if err := l.activities.Create(activity); err != nil {
		return nil, err
	}

	metrics.ActivitiesLogged.WithLabelValues(string(category)).Inc()
	metrics.PointsAwarded.Add(float64(activity.Points))

	// The activity row is durable from here on; aggregate failures are
	// reported but never roll it back.
	if err := l.applyPointsDelta(ctx, user, activity.Points, &loggedAt); err != nil {
		return activity, err
	}
	return activity, nil
}

// UpdateActivity rescores an existing activity from the new draft and moves
// the user's totals by the point delta (which may be negative).
func (l *ActivityLedger) UpdateActivity(ctx context.Context, activityID uint, draft models.ActivityDraft) (*models.Activity, error) {
	category, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	activity, err := l.activities.FindByID(activityID)
	if err != nil {
		return nil, err
	}

	unlock := l.lockUser(activity.UserID)
	defer unlock()

	user, err := l.users.FindByID(activity.UserID)
	if err != nil {
		return nil, err
	}

	oldPoints := activity.Points
	activity.Category = category
	activity.Name = strings.TrimSpace(draft.Name)
	activity.Description = draft.Description
	activity.Duration = draft.Duration
	activity.Points = gamification.CalculatePoints(category, draft.Duration)
	activity.CaloriesBurned = gamification.EstimateCalories(category, draft.Duration)
	if draft.LoggedAt != nil {
		activity.LoggedAt = *draft.LoggedAt
	}

	if err := l.activities.Update(activity); err != nil {
		return nil, err
	}

	if err := l.applyPointsDelta(ctx, user, activity.Points-oldPoints, nil); err != nil {
		return activity, err
	}
	return activity, nil
}

// DeleteActivity removes the record and debits its snapshot points, clamping
// the user's total at zero.
func (l *ActivityLedger) DeleteActivity(ctx context.Context, activityID uint) error {
	activity, err := l.activities.FindByID(activityID)
	if err != nil {
		return err
	}

	unlock := l.lockUser(activity.UserID)
	defer unlock()

	user, err := l.users.FindByID(activity.UserID)
	if err != nil {
		return err
	}

	if err := l.activities.Delete(activityID); err != nil {
		return err
	}

	return l.applyPointsDelta(ctx, user, -activity.Points, nil)
}

// GetActivity is a plain lookup with no side effects.
func (l *ActivityLedger) GetActivity(activityID uint) (*models.Activity, error) {
	return l.activities.FindByID(activityID)
}

// EvaluateBadges runs the badge evaluator inside the user's critical
// section, so an explicit re-check cannot race a concurrent activity write.
func (l *ActivityLedger) EvaluateBadges(userID uint) ([]models.Achievement, error) {
	unlock := l.lockUser(userID)
	defer unlock()

	user, err := l.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return l.badges.Evaluate(user)
}

// applyPointsDelta mutates and persists the user's aggregates after an
// activity write. Caller must hold the user's lock. streakDay, when set,
// marks the logged day for streak maintenance.
func (l *ActivityLedger) applyPointsDelta(ctx context.Context, user *models.User, delta int, streakDay *time.Time) error {
	user.TotalPoints += delta
	if user.TotalPoints < 0 {
		user.TotalPoints = 0
	}

	// Levels only ever go up; a points decrease never demotes.
	if lvl := gamification.LevelFor(user.TotalPoints); lvl > user.Level {
		user.Level = lvl
	}

	if streakDay != nil {
		if _, err := l.streaks.RecordDay(user, *streakDay); err != nil {
			log.Printf("streak update failed for user %d: %v", user.ID, err)
		}
	}

	if err := l.users.Update(user); err != nil {
		return err
	}

	if _, err := l.badges.Evaluate(user); err != nil {
		log.Printf("badge evaluation failed for user %d: %v", user.ID, err)
	}

	// Best-effort remote sync; stale standings self-heal on the next push.
	if err := l.projector.Publish(ctx, user); err != nil {
		log.Printf("deferring leaderboard sync for user %d: %v", user.ID, err)
	}

	l.bus.Notify(user.ID)
	return nil
}
