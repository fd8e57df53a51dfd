package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name            string
		activitiesToday int
		currentStreak   int
		level           int
		want            int
	}{
		{"baseline with nothing logged", 0, 0, 1, 51},
		{"single activity", 1, 0, 1, 61},
		{"bonuses cap then clamp to 100", 5, 10, 3, 100},
		{"activity bonus caps at 30", 10, 0, 1, 81},
		{"streak bonus caps at 20", 0, 50, 1, 71},
		{"level bonus caps at 10", 0, 0, 99, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthScore(tt.activitiesToday, tt.currentStreak, tt.level)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}
