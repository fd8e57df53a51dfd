package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{1250, 3},
		{-50, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.points), "points=%d", tt.points)
	}
}

func TestLevelForIsNonDecreasing(t *testing.T) {
	prev := LevelFor(0)
	for points := 1; points <= 5000; points++ {
		lvl := LevelFor(points)
		assert.GreaterOrEqual(t, lvl, prev, "level dropped at %d points", points)
		assert.Equal(t, points/PointsPerLevel+1, lvl)
		prev = lvl
	}
}

func TestProgressToNextLevel(t *testing.T) {
	assert.Equal(t, 0.0, ProgressToNextLevel(0))
	assert.Equal(t, 0.5, ProgressToNextLevel(250))
	assert.Equal(t, 0.0, ProgressToNextLevel(500))
	assert.Equal(t, 0.25, ProgressToNextLevel(1125))

	for points := 0; points <= 2000; points += 7 {
		p := ProgressToNextLevel(points)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}
