package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaltrack/internal/services"
)

type LeaderboardController struct {
	projector *services.LeaderboardProjector
}

func NewLeaderboardController(projector *services.LeaderboardProjector) *LeaderboardController {
	return &LeaderboardController{projector: projector}
}

// GetStandings godoc
// @Summary Get the current leaderboard
// @Description Snapshots sorted by total points descending, stable by arrival order on ties
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Leaderboard retrieved successfully"
// @Failure 503 {object} map[string]interface{} "Leaderboard store unavailable"
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetStandings(c *gin.Context) {
	entries, err := lc.projector.Standings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve leaderboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leaderboard retrieved successfully",
		"data":    entries,
	})
}

// StreamStandings godoc
// @Summary Stream live leaderboard updates
// @Description Server-sent events; the full sorted standings are pushed whenever any participant changes
// @Tags leaderboard
// @Produce text/event-stream
// @Router /leaderboard/stream [get]
func (lc *LeaderboardController) StreamStandings(c *gin.Context) {
	stream, err := lc.projector.Subscribe(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to subscribe to leaderboard")
		return
	}

	c.Stream(func(w io.Writer) bool {
		entries, ok := <-stream
		if !ok {
			return false
		}
		c.SSEvent("standings", entries)
		return true
	})
}
