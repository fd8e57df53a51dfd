package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"vitaltrack/internal/mocks"
	"vitaltrack/internal/models"
)

func setupAchievementRouter() (*gin.Engine, *mocks.MockAchievementRepository, *mocks.MockBadgeRepository) {
	gin.SetMode(gin.TestMode)
	achievements := new(mocks.MockAchievementRepository)
	badges := new(mocks.MockBadgeRepository)
	controller := NewAchievementController(achievements, badges, nil)

	router := gin.New()
	router.GET("/badge", controller.ListBadges)
	router.GET("/achievement/user/:user_id", controller.ListAchievements)
	return router, achievements, badges
}

func TestListBadgesOrdersByRarity(t *testing.T) {
	router, _, badges := setupAchievementRouter()

	// Catalog returned out of order; the response sorts rarity ascending,
	// then requirement ascending within a rarity.
	badges.On("FindAll").Return([]models.Badge{
		{Name: "Iron Will", Requirement: 30, Rarity: models.RarityLegendary},
		{Name: "Workout Warrior", Requirement: 25, Rarity: models.RarityRare},
		{Name: "First Steps", Requirement: 1, Rarity: models.RarityCommon},
		{Name: "Week Streak", Requirement: 7, Rarity: models.RarityEpic},
		{Name: "Well Rested", Requirement: 20, Rarity: models.RarityCommon},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/badge", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.Badge `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	names := make([]string, 0, len(response.Data))
	for _, b := range response.Data {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"First Steps", "Well Rested", "Workout Warrior", "Week Streak", "Iron Will"}, names)
}

func TestListAchievements(t *testing.T) {
	router, achievements, _ := setupAchievementRouter()
	achievements.On("FindByUserID", uint(1)).Return([]models.Achievement{{ID: 3, UserID: 1, BadgeID: 2}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/achievement/user/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response["status"])
	achievements.AssertExpectations(t)
}
