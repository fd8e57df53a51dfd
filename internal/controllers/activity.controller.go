package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// ActivityService is the ledger surface the controller needs; satisfied by
// *services.ActivityLedger.
type ActivityService interface {
	AddActivity(ctx context.Context, userID uint, draft models.ActivityDraft) (*models.Activity, error)
	UpdateActivity(ctx context.Context, activityID uint, draft models.ActivityDraft) (*models.Activity, error)
	DeleteActivity(ctx context.Context, activityID uint) error
	GetActivity(activityID uint) (*models.Activity, error)
}

type ActivityController struct {
	ledger ActivityService
	repo   repository.ActivityRepository
}

func NewActivityController(ledger ActivityService, repo repository.ActivityRepository) *ActivityController {
	return &ActivityController{ledger: ledger, repo: repo}
}

// CreateActivity godoc
// @Summary Log a new activity
// @Description Score and persist an activity for a user; points, level, streak and badges update as a side effect
// @Tags activity
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param activity body models.ActivityDraft true "Activity draft"
// @Success 201 {object} map[string]interface{} "Activity created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /activity/user/{user_id} [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var draft models.ActivityDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	activity, err := ac.ledger.AddActivity(c.Request.Context(), userID, draft)
	if err != nil {
		respondError(c, err, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Activity created successfully",
		"data":    activity,
	})
}

// GetActivityByID godoc
// @Summary Get an activity by ID
// @Tags activity
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activity/{id} [get]
func (ac *ActivityController) GetActivityByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activity, err := ac.ledger.GetActivity(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity retrieved successfully",
		"data":    activity,
	})
}

// ListActivities godoc
// @Summary List a user's activities
// @Description All activities for a user, optionally filtered by category, date window or most-recent limit
// @Tags activity
// @Produce json
// @Param user_id path int true "User ID"
// @Param category query string false "Activity category filter"
// @Param limit query int false "Most recent N activities"
// @Param start query string false "Window start (RFC3339, inclusive)"
// @Param end query string false "Window end (RFC3339, exclusive)"
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /activity/user/{user_id} [get]
func (ac *ActivityController) ListActivities(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var (
		activities []models.Activity
		err        error
	)

	switch {
	case c.Query("category") != "":
		var category models.ActivityCategory
		category, err = models.ParseActivityCategory(c.Query("category"))
		if err == nil {
			activities, err = ac.repo.FindByUserIDAndCategory(userID, category)
		}
	case c.Query("limit") != "":
		var limit int
		limit, err = strconv.Atoi(c.Query("limit"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   "limit must be a positive integer",
			})
			return
		}
		activities, err = ac.repo.FindRecentByUserID(userID, limit)
	case c.Query("start") != "" || c.Query("end") != "":
		var start, end time.Time
		start, end, err = parseWindow(c.Query("start"), c.Query("end"))
		if err == nil {
			activities, err = ac.repo.FindByUserIDAndDateRange(userID, start, end)
		}
	default:
		activities, err = ac.repo.FindAllByUserID(userID)
	}

	if err != nil {
		respondError(c, err, "Failed to retrieve activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    activities,
	})
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Re-score the activity from the new draft; the user's totals move by the point delta
// @Tags activity
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param activity body models.ActivityDraft true "Activity draft"
// @Success 200 {object} map[string]interface{} "Activity updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activity/{id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var draft models.ActivityDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	activity, err := ac.ledger.UpdateActivity(c.Request.Context(), id, draft)
	if err != nil {
		respondError(c, err, "Failed to update activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity updated successfully",
		"data":    activity,
	})
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Remove the activity and debit its points from the user's total
// @Tags activity
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity deleted successfully"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activity/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.ledger.DeleteActivity(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity deleted successfully",
		"data":    nil,
	})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid " + name,
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func parseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now()

	if startStr != "" {
		parsed, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start: %v", models.ErrValidation, err)
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end: %v", models.ErrValidation, err)
		}
		end = parsed
	}
	return start, end, nil
}

// respondError maps the shared error taxonomy onto HTTP statuses with the
// standard envelope.
func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrRemoteSync):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}
