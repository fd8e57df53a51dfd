package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vitaltrack/internal/mocks"
	"vitaltrack/internal/models"
)

type mockActivityService struct {
	mock.Mock
}

func (m *mockActivityService) AddActivity(_ context.Context, userID uint, draft models.ActivityDraft) (*models.Activity, error) {
	args := m.Called(userID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *mockActivityService) UpdateActivity(_ context.Context, activityID uint, draft models.ActivityDraft) (*models.Activity, error) {
	args := m.Called(activityID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *mockActivityService) DeleteActivity(_ context.Context, activityID uint) error {
	args := m.Called(activityID)
	return args.Error(0)
}

func (m *mockActivityService) GetActivity(activityID uint) (*models.Activity, error) {
	args := m.Called(activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func setupActivityRouter() (*gin.Engine, *mockActivityService, *mocks.MockActivityRepository) {
	gin.SetMode(gin.TestMode)
	service := new(mockActivityService)
	repo := new(mocks.MockActivityRepository)
	controller := NewActivityController(service, repo)

	router := gin.New()
	router.POST("/activity/user/:user_id", controller.CreateActivity)
	router.GET("/activity/user/:user_id", controller.ListActivities)
	router.GET("/activity/:id", controller.GetActivityByID)
	router.PUT("/activity/:id", controller.UpdateActivity)
	router.DELETE("/activity/:id", controller.DeleteActivity)
	return router, service, repo
}

func TestCreateActivity(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		requestBody    map[string]interface{}
		setupMock      func(*mockActivityService)
		expectedStatus int
	}{
		{
			name:   "successful creation",
			userID: "1",
			requestBody: map[string]interface{}{
				"category": "exercise",
				"name":     "Morning run",
				"duration": 30,
			},
			setupMock: func(m *mockActivityService) {
				m.On("AddActivity", uint(1), mock.AnythingOfType("models.ActivityDraft")).
					Return(&models.Activity{ID: 1, UserID: 1, Category: models.CategoryExercise, Points: 60}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "missing required fields",
			userID: "1",
			requestBody: map[string]interface{}{
				"category": "exercise",
			},
			setupMock:      func(m *mockActivityService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "validation error from ledger",
			userID: "1",
			requestBody: map[string]interface{}{
				"category": "swimming",
				"name":     "Laps",
				"duration": 30,
			},
			setupMock: func(m *mockActivityService) {
				m.On("AddActivity", uint(1), mock.AnythingOfType("models.ActivityDraft")).
					Return(nil, models.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: "42",
			requestBody: map[string]interface{}{
				"category": "exercise",
				"name":     "Morning run",
				"duration": 30,
			},
			setupMock: func(m *mockActivityService) {
				m.On("AddActivity", uint(42), mock.AnythingOfType("models.ActivityDraft")).
					Return(nil, models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid user id",
			userID:         "abc",
			requestBody:    map[string]interface{}{},
			setupMock:      func(m *mockActivityService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service, _ := setupActivityRouter()
			tt.setupMock(service)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/activity/user/"+tt.userID, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestGetActivityByID(t *testing.T) {
	router, service, _ := setupActivityRouter()
	service.On("GetActivity", uint(7)).Return(&models.Activity{ID: 7, Points: 60}, nil)

	req := httptest.NewRequest(http.MethodGet, "/activity/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "success", response["status"])
}

func TestGetActivityByIDNotFound(t *testing.T) {
	router, service, _ := setupActivityRouter()
	service.On("GetActivity", uint(99)).Return(nil, models.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/activity/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListActivitiesFilters(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		setupMock func(*mocks.MockActivityRepository)
	}{
		{
			name: "all activities",
			url:  "/activity/user/1",
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("FindAllByUserID", uint(1)).Return([]models.Activity{{ID: 1}}, nil)
			},
		},
		{
			name: "by category",
			url:  "/activity/user/1?category=exercise",
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("FindByUserIDAndCategory", uint(1), models.CategoryExercise).Return([]models.Activity{}, nil)
			},
		},
		{
			name: "most recent",
			url:  "/activity/user/1?limit=5",
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("FindRecentByUserID", uint(1), 5).Return([]models.Activity{}, nil)
			},
		},
		{
			name: "date window",
			url:  "/activity/user/1?start=2025-03-01T00:00:00Z&end=2025-03-08T00:00:00Z",
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("FindByUserIDAndDateRange", uint(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
					Return([]models.Activity{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, repo := setupActivityRouter()
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			repo.AssertExpectations(t)
		})
	}
}

func TestDeleteActivity(t *testing.T) {
	router, service, _ := setupActivityRouter()
	service.On("DeleteActivity", uint(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/activity/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}
