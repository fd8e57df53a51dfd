package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vitaltrack/database"
	"vitaltrack/internal/controllers"
	"vitaltrack/internal/leaderboard"
	"vitaltrack/internal/middleware"
	"vitaltrack/internal/repository"
	"vitaltrack/internal/services"
	"vitaltrack/internal/utils"
	"vitaltrack/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	// First-run seeding: badge catalog and the local account.
	if err := utils.SeedBadges(badgeRepo); err != nil {
		log.Fatalf("Failed to seed badge catalog: %v", err)
	}
	if _, err := utils.EnsureDefaultUser(userRepo); err != nil {
		log.Fatalf("Failed to provision default user: %v", err)
	}

	// Shared leaderboard store. Redis failures degrade to an in-process
	// store so local flows never block on remote sync.
	var lbStore leaderboard.Store
	redisStore, err := leaderboard.NewRedisStore()
	if err != nil {
		log.Printf("Leaderboard store unavailable, running with local standings only: %v", err)
		lbStore = leaderboard.NewMemoryStore()
	} else {
		lbStore = redisStore
		defer redisStore.Close()
		log.Println("Connected to leaderboard store")
	}

	// Services
	bus := services.NewChangeBus()
	streaks := services.NewStreakTracker(activityRepo)
	evaluator := services.NewBadgeEvaluator(badgeRepo, achievementRepo, activityRepo)
	projector := services.NewLeaderboardProjector(lbStore)
	ledger := services.NewActivityLedger(userRepo, activityRepo, streaks, evaluator, projector, bus)
	aggregator := services.NewDashboardAggregator(userRepo, activityRepo, bus)

	// Republish every user's standing so the shared store reflects local
	// state after downtime or a fresh Redis instance.
	if err := projector.Backfill(context.Background(), userRepo); err != nil {
		log.Printf("Leaderboard backfill incomplete: %v", err)
	}

	// Controllers
	userController := controllers.NewUserController(userRepo)
	activityController := controllers.NewActivityController(ledger, activityRepo)
	dashboardController := controllers.NewDashboardController(aggregator)
	achievementController := controllers.NewAchievementController(achievementRepo, badgeRepo, ledger)
	leaderboardController := controllers.NewLeaderboardController(projector)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "VitalTrack API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterActivityRoutes(router, activityController)
	routes.RegisterDashboardRoutes(router, dashboardController)
	routes.RegisterAchievementRoutes(router, achievementController)
	routes.RegisterLeaderboardRoutes(router, leaderboardController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("VitalTrack API started on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
