package services

import (
	"context"
	"time"

	"vitaltrack/internal/gamification"
	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// DashboardSummary is the per-user composite view the dashboard renders.
type DashboardSummary struct {
	User            *models.User `json:"user"`
	BMI             float64      `json:"bmi"`
	BMICategory     string       `json:"bmi_category"`
	LevelProgress   float64      `json:"level_progress"`
	ActivitiesToday int          `json:"activities_today"`
	PointsToday     int          `json:"points_today"`
	ActivitiesWeek  int          `json:"activities_week"`
	PointsWeek      int          `json:"points_week"`
	ActivitiesMonth int          `json:"activities_month"`
	PointsMonth     int          `json:"points_month"`
	TotalCalories   int          `json:"total_calories"`
	HealthScore     int          `json:"health_score"`
}

// ActivityStats is the per-user lifetime aggregate view.
type ActivityStats struct {
	TotalActivities int64                            `json:"total_activities"`
	TotalPoints     int64                            `json:"total_points"`
	TotalCalories   int64                            `json:"total_calories"`
	ByCategory      map[models.ActivityCategory]int64 `json:"by_category"`
}

// DashboardAggregator composes read-only summaries. Day/week/month windows
// use the local calendar and are recomputed on every call.
type DashboardAggregator struct {
	users      repository.UserRepository
	activities repository.ActivityRepository
	bus        *ChangeBus
	now        func() time.Time
}

func NewDashboardAggregator(
	users repository.UserRepository,
	activities repository.ActivityRepository,
	bus *ChangeBus,
) *DashboardAggregator {
	return &DashboardAggregator{
		users:      users,
		activities: activities,
		bus:        bus,
		now:        time.Now,
	}
}

func (a *DashboardAggregator) Summary(userID uint) (*DashboardSummary, error) {
	user, err := a.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	day := StartOfDay(now)
	week := StartOfWeek(now)
	month := StartOfMonth(now)
	tomorrow := day.AddDate(0, 0, 1)

	activitiesToday, err := a.activities.CountByUserIDAndDateRange(userID, day, tomorrow)
	if err != nil {
		return nil, err
	}
	pointsToday, err := a.activities.SumPointsByUserIDAndDateRange(userID, day, tomorrow)
	if err != nil {
		return nil, err
	}
	activitiesWeek, err := a.activities.CountByUserIDAndDateRange(userID, week, tomorrow)
	if err != nil {
		return nil, err
	}
	pointsWeek, err := a.activities.SumPointsByUserIDAndDateRange(userID, week, tomorrow)
	if err != nil {
		return nil, err
	}
	activitiesMonth, err := a.activities.CountByUserIDAndDateRange(userID, month, tomorrow)
	if err != nil {
		return nil, err
	}
	pointsMonth, err := a.activities.SumPointsByUserIDAndDateRange(userID, month, tomorrow)
	if err != nil {
		return nil, err
	}
	totalCalories, err := a.activities.SumCaloriesByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		User:            user,
		BMI:             user.BMI(),
		BMICategory:     user.BMICategory(),
		LevelProgress:   gamification.ProgressToNextLevel(user.TotalPoints),
		ActivitiesToday: int(activitiesToday),
		PointsToday:     int(pointsToday),
		ActivitiesWeek:  int(activitiesWeek),
		PointsWeek:      int(pointsWeek),
		ActivitiesMonth: int(activitiesMonth),
		PointsMonth:     int(pointsMonth),
		TotalCalories:   int(totalCalories),
		HealthScore:     gamification.HealthScore(int(activitiesToday), user.CurrentStreak, user.Level),
	}, nil
}

func (a *DashboardAggregator) Stats(userID uint) (*ActivityStats, error) {
	total, err := a.activities.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	points, err := a.activities.SumPointsByUserID(userID)
	if err != nil {
		return nil, err
	}
	calories, err := a.activities.SumCaloriesByUserID(userID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[models.ActivityCategory]int64, len(models.AllCategories))
	for _, category := range models.AllCategories {
		count, err := a.activities.CountByUserIDAndCategory(userID, category)
		if err != nil {
			return nil, err
		}
		byCategory[category] = count
	}

	return &ActivityStats{
		TotalActivities: total,
		TotalPoints:     points,
		TotalCalories:   calories,
		ByCategory:      byCategory,
	}, nil
}

// Subscribe streams fresh summaries for one user whenever their data
// changes. Delivery is latest-wins: if a recomputation is superseded before
// the consumer reads it, only the newest summary is delivered.
func (a *DashboardAggregator) Subscribe(ctx context.Context, userID uint) <-chan *DashboardSummary {
	out := make(chan *DashboardSummary, 1)
	changes := a.bus.Subscribe(ctx)

	go func() {
		defer close(out)

		if summary, err := a.Summary(userID); err == nil {
			pushSummary(out, summary)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case changed, ok := <-changes:
				if !ok {
					return
				}
				if changed != userID {
					continue
				}
				summary, err := a.Summary(userID)
				if err != nil {
					continue
				}
				pushSummary(out, summary)
			}
		}
	}()

	return out
}

func pushSummary(out chan *DashboardSummary, summary *DashboardSummary) {
	select {
	case out <- summary:
	default:
		select {
		case <-out:
		default:
		}
		select {
		case out <- summary:
		default:
		}
	}
}
