package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vitaltrack/internal/models"
)

func TestSortEntries(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{UserID: "1", Username: "A", TotalPoints: 100, Seq: 1},
		{UserID: "2", Username: "B", TotalPoints: 250, Seq: 2},
		{UserID: "3", Username: "C", TotalPoints: 250, Seq: 3},
	}

	SortEntries(entries)

	assert.Equal(t, "B", entries[0].Username)
	assert.Equal(t, "C", entries[1].Username)
	assert.Equal(t, "A", entries[2].Username)
}

func TestMemoryStoreAssignsSequenceOnce(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Publish(ctx, models.LeaderboardEntry{UserID: "1", TotalPoints: 10}))
	assert.NoError(t, store.Publish(ctx, models.LeaderboardEntry{UserID: "2", TotalPoints: 20}))
	// Overwrite keeps user 1's original sequence.
	assert.NoError(t, store.Publish(ctx, models.LeaderboardEntry{UserID: "1", TotalPoints: 30}))

	entries, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	byID := map[string]models.LeaderboardEntry{}
	for _, e := range entries {
		byID[e.UserID] = e
	}
	assert.Equal(t, int64(1), byID["1"].Seq)
	assert.Equal(t, int64(2), byID["2"].Seq)
	assert.Equal(t, 30, byID["1"].TotalPoints)
}
