package gamification

// Health score formula: a fixed 50-point base plus capped bonuses for
// today's activity count, the current streak and the level, clamped to 100.
// The constants are contract, not tuning knobs.
const (
	healthScoreBase     = 50
	healthScoreMax      = 100
	activityBonusPerLog = 10
	activityBonusCap    = 30
	streakBonusPerDay   = 2
	streakBonusCap      = 20
	levelBonusCap       = 10
)

// HealthScore returns a composite wellness metric in [0, 100].
func HealthScore(activitiesToday, currentStreak, level int) int {
	score := healthScoreBase
	score += min(activitiesToday*activityBonusPerLog, activityBonusCap)
	score += min(currentStreak*streakBonusPerDay, streakBonusCap)
	score += min(level, levelBonusCap)
	return min(score, healthScoreMax)
}
