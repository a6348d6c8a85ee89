package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vantagecare/practice-backend/internal/app"
	"github.com/vantagecare/practice-backend/internal/data/materializer"
	"github.com/vantagecare/practice-backend/internal/data/repos"
	"github.com/vantagecare/practice-backend/internal/db"
	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/events"
	"github.com/vantagecare/practice-backend/internal/handlers"
	"github.com/vantagecare/practice-backend/internal/middleware"
	"github.com/vantagecare/practice-backend/internal/observability"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
	"github.com/vantagecare/practice-backend/internal/server"
	"github.com/vantagecare/practice-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg, err := app.LoadConfig(log)
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Reducer registry: every event name must resolve before traffic flows.
	registry := flow.NewRegistry()
	if err := practice.RegisterChallengeReducers(registry); err != nil {
		log.Error("Reducer registration failed", "error", err)
		os.Exit(1)
	}

	// Event bus
	log.Info("Setting up event bus from main...")
	bus, err := events.NewRedisBus(log)
	if err != nil {
		log.Error("Could not init event bus", "error", err)
		os.Exit(1)
	}
	defer bus.Close()

	// Metrics + materializer
	metrics := observability.NewMetrics()
	mat, err := materializer.New(materializer.Deps{
		DB:         thePG,
		Log:        log,
		Hooks:      materializer.NewMetricsHooks(metrics),
		Registry:   registry,
		Aggregates: repos.NewAggregateStore(log),
		Bus:        bus,
	})
	if err != nil {
		log.Error("Could not init materializer", "error", err)
		os.Exit(1)
	}

	// Repos
	log.Info("Setting up repos from main...")
	challengeRepo := repos.NewChallengeRepo(thePG, log)
	patientChallengeRepo := repos.NewPatientChallengeRepo(thePG, log)
	challengeLikeRepo := repos.NewChallengeLikeRepo(thePG, log)
	shortcutRepo := repos.NewShortcutRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	challengeService := services.NewChallengeService(thePG, log, challengeRepo, patientChallengeRepo, challengeLikeRepo, mat)
	shortcutService := services.NewShortcutService(thePG, log, shortcutRepo, mat)

	// Handlers
	log.Info("Setting up handlers from main...")
	challengeHandler := handlers.NewChallengeHandler(log, challengeService)
	shortcutHandler := handlers.NewShortcutHandler(log, shortcutService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, cfg.JWTSecretKey)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:   authMiddleware,
		ChallengeHandler: challengeHandler,
		ShortcutHandler:  shortcutHandler,
		Metrics:          metrics,
		AllowOrigins:     cfg.AllowOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
