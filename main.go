package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WanderPlan/wanderplan-backend/config"
	"github.com/WanderPlan/wanderplan-backend/handlers"
	"github.com/WanderPlan/wanderplan-backend/internal/store/postgres"
	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/pkg/geocode"
	"github.com/WanderPlan/wanderplan-backend/pkg/llm"
	"github.com/WanderPlan/wanderplan-backend/router"
	"github.com/WanderPlan/wanderplan-backend/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.InitLogger()
	defer func() {
		_ = logger.Close()
	}()
	log := logger.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL())
	if err != nil {
		log.Fatalw("Invalid database configuration", "error", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Fatalw("Failed to create database pool", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalw("Database unreachable", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// The geocode cache is an optimization; run without it.
		log.Warnw("Redis unreachable, geocode caching disabled", "error", err)
		_ = redisClient.Close()
		redisClient = nil
	} else {
		defer func() {
			_ = redisClient.Close()
		}()
	}

	tripStore := postgres.NewTripStore(pool)
	expenseStore := postgres.NewExpenseStore(pool)

	llmClient := llm.NewClient(llm.Config{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Timeout: cfg.AI.Timeout,
	})
	geocodeClient := geocode.NewClient(geocode.Config{
		BaseURL:   cfg.Geocoding.BaseURL,
		UserAgent: cfg.Geocoding.UserAgent,
		CacheTTL:  cfg.Geocoding.CacheTTL,
	}, redisClient)

	itinerarySvc := services.NewItineraryService(llmClient, tripStore, cfg.AI.PlannerModel)
	expenseSvc := services.NewExpenseService(llmClient, expenseStore, cfg.AI.ExtractorModel)
	tripInfoSvc := services.NewTripInfoService(llmClient, cfg.AI.ExtractorModel)
	budgetSvc := services.NewBudgetService(tripStore, expenseStore)
	markerSvc := services.NewMarkerService(geocodeClient, tripStore)

	r := router.SetupRouter(router.Dependencies{
		Config:           cfg,
		ItineraryHandler: handlers.NewItineraryHandler(itinerarySvc),
		TripInfoHandler:  handlers.NewTripInfoHandler(tripInfoSvc),
		ExpenseHandler:   handlers.NewExpenseHandler(expenseSvc),
		BudgetHandler:    handlers.NewBudgetHandler(budgetSvc),
		MarkerHandler:    handlers.NewMarkerHandler(markerSvc),
		HealthHandler:    handlers.NewHealthHandler(pool),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("Server starting", "port", cfg.Server.Port, "env", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Graceful shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}
