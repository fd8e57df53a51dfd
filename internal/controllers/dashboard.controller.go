package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaltrack/internal/services"
)

type DashboardController struct {
	aggregator *services.DashboardAggregator
}

func NewDashboardController(aggregator *services.DashboardAggregator) *DashboardController {
	return &DashboardController{aggregator: aggregator}
}

// GetSummary godoc
// @Summary Get the dashboard summary for a user
// @Description Today/week/month stats, lifetime calories and the health score
// @Tags dashboard
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /dashboard/user/{user_id} [get]
func (dc *DashboardController) GetSummary(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	summary, err := dc.aggregator.Summary(userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}

// GetStats godoc
// @Summary Get lifetime activity statistics for a user
// @Tags dashboard
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Stats retrieved successfully"
// @Router /dashboard/user/{user_id}/stats [get]
func (dc *DashboardController) GetStats(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	stats, err := dc.aggregator.Stats(userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Stats retrieved successfully",
		"data":    stats,
	})
}

// StreamSummary godoc
// @Summary Stream live dashboard summaries
// @Description Server-sent events; a fresh summary is pushed whenever the user's data changes
// @Tags dashboard
// @Produce text/event-stream
// @Param user_id path int true "User ID"
// @Router /dashboard/user/{user_id}/stream [get]
func (dc *DashboardController) StreamSummary(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	summaries := dc.aggregator.Subscribe(c.Request.Context(), userID)

	c.Stream(func(w io.Writer) bool {
		summary, ok := <-summaries
		if !ok {
			return false
		}
		c.SSEvent("summary", summary)
		return true
	})
}
