package leaderboard

import (
	"sort"

	"vitaltrack/internal/models"
)

// SortEntries orders a snapshot set for display: descending total points,
// ties broken by arrival sequence so positions are stable between refreshes.
func SortEntries(entries []models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Seq < entries[j].Seq
	})
}
