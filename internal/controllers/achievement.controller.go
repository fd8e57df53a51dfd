package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"vitaltrack/internal/models"
	"vitaltrack/internal/repository"
)

// BadgeChecker triggers an idempotent badge evaluation for a user;
// satisfied by *services.ActivityLedger.
type BadgeChecker interface {
	EvaluateBadges(userID uint) ([]models.Achievement, error)
}

type AchievementController struct {
	achievements repository.AchievementRepository
	badges       repository.BadgeRepository
	checker      BadgeChecker
}

func NewAchievementController(
	achievements repository.AchievementRepository,
	badges repository.BadgeRepository,
	checker BadgeChecker,
) *AchievementController {
	return &AchievementController{
		achievements: achievements,
		badges:       badges,
		checker:      checker,
	}
}

// ListBadges godoc
// @Summary List the badge catalog
// @Description Catalog ordered by rarity ascending, then by requirement
// @Tags achievement
// @Produce json
// @Success 200 {object} map[string]interface{} "Badges retrieved successfully"
// @Router /badge [get]
func (ac *AchievementController) ListBadges(c *gin.Context) {
	badges, err := ac.badges.FindAll()
	if err != nil {
		respondError(c, err, "Failed to retrieve badges")
		return
	}

	sort.SliceStable(badges, func(i, j int) bool {
		if badges[i].Rarity.Rank() != badges[j].Rarity.Rank() {
			return badges[i].Rarity.Rank() < badges[j].Rarity.Rank()
		}
		return badges[i].Requirement < badges[j].Requirement
	})

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Badges retrieved successfully",
		"data":    badges,
	})
}

// ListAchievements godoc
// @Summary List a user's unlocked achievements
// @Tags achievement
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Achievements retrieved successfully"
// @Router /achievement/user/{user_id} [get]
func (ac *AchievementController) ListAchievements(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	achievements, err := ac.achievements.FindByUserID(userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve achievements")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Achievements retrieved successfully",
		"data":    achievements,
	})
}

// EvaluateBadges godoc
// @Summary Re-run badge evaluation for a user
// @Description Idempotent; returns only the achievements newly unlocked by this call
// @Tags achievement
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Evaluation completed"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /achievement/user/{user_id}/evaluate [post]
func (ac *AchievementController) EvaluateBadges(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	unlocked, err := ac.checker.EvaluateBadges(userID)
	if err != nil {
		respondError(c, err, "Failed to evaluate badges")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Evaluation completed",
		"data":    unlocked,
	})
}
