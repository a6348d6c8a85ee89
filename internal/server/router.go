package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vantagecare/practice-backend/internal/handlers"
	"github.com/vantagecare/practice-backend/internal/middleware"
	"github.com/vantagecare/practice-backend/internal/observability"
	"github.com/vantagecare/practice-backend/internal/requestdata"
)

type RouterConfig struct {
	AuthMiddleware   *middleware.AuthMiddleware
	ChallengeHandler *handlers.ChallengeHandler
	ShortcutHandler  *handlers.ShortcutHandler
	Metrics          *observability.Metrics
	AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	if cfg.Metrics != nil {
		router.GET("/metrics", handlers.MetricsHandler(cfg.Metrics))
	}

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	// Challenges
	api.GET("/challenges", cfg.ChallengeHandler.ListActiveChallenges)
	api.GET("/challenges/:id", cfg.ChallengeHandler.GetChallenge)

	patient := api.Group("/")
	patient.Use(cfg.AuthMiddleware.RequireRole(requestdata.RolePatient))
	patient.GET("/me/challenges", cfg.ChallengeHandler.ListMyChallenges)
	patient.POST("/challenges/:id/like", cfg.ChallengeHandler.LikeChallenge)
	patient.POST("/challenges/:id/participate", cfg.ChallengeHandler.ParticipateInChallenge)
	patient.POST("/challenges/:id/complete", cfg.ChallengeHandler.CompleteChallenge)
	patient.POST("/challenges/:id/dismiss", cfg.ChallengeHandler.DismissChallenge)

	// Shortcuts
	employee := api.Group("/")
	employee.Use(cfg.AuthMiddleware.RequireRole(requestdata.RoleEmployee))
	employee.GET("/shortcuts", cfg.ShortcutHandler.ListShortcuts)
	employee.PATCH("/shortcuts/:id", cfg.ShortcutHandler.RenameShortcut)

	return router
}
