package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitaltrack/internal/gamification"
	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
	"vitaltrack/internal/utils"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

type profileResponse struct {
	*models.User
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category"`
	LevelProgress float64 `json:"level_progress"`
}

func profileOf(user *models.User) profileResponse {
	return profileResponse{
		User:          user,
		BMI:           user.BMI(),
		BMICategory:   user.BMICategory(),
		LevelProgress: gamification.ProgressToNextLevel(user.TotalPoints),
	}
}

// GetCurrentUser godoc
// @Summary Get (or provision) the local account
// @Description Returns the first user, creating a default account on first run
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve user"
// @Router /user/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, err := utils.EnsureDefaultUser(uc.repo)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    profileOf(user),
	})
}

// GetUserByID godoc
// @Summary Get a user profile by ID
// @Description Profile with derived BMI, BMI category and level progress
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /user/{id} [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    profileOf(user),
	})
}

// PatchUser godoc
// @Summary Update profile fields
// @Description Partial update of identity/profile fields; gamification aggregates are not patchable
// @Tags user
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "User updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /user/{id} [patch]
func (uc *UserController) PatchUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Aggregates are owned by the ledger; profile edits cannot touch them.
	for _, field := range []string{"total_points", "level", "current_streak", "longest_streak"} {
		delete(data, field)
	}

	if err := uc.repo.Patch(id, data); err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	user, err := uc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    profileOf(user),
	})
}
