package gamification

// PointsPerLevel is the flat level curve: every 500 points is one level.
const PointsPerLevel = 500

// LevelFor returns the level implied by a cumulative point total.
// Zero points is level 1.
func LevelFor(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/PointsPerLevel + 1
}

// ProgressToNextLevel returns the fraction of the way to the next level,
// always in [0, 1).
func ProgressToNextLevel(totalPoints int) float64 {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return float64(totalPoints%PointsPerLevel) / float64(PointsPerLevel)
}
