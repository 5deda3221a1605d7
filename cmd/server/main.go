package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/f1strategy/pitwall/internal/api"
	"github.com/f1strategy/pitwall/internal/api/handlers"
	"github.com/f1strategy/pitwall/internal/api/middleware"
	"github.com/f1strategy/pitwall/internal/services"
	"github.com/f1strategy/pitwall/pkg/config"
	"github.com/f1strategy/pitwall/pkg/logger"
)

func main() {
	log := logger.InitLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
	cacheService := services.NewCacheService(redisClient, log)
	trackService := services.NewTrackService()
	timingClient := services.NewLiveTimingClient(services.LiveTimingOptions{
		BaseURL:          cfg.LiveTimingBaseURL,
		RequestsPerSec:   cfg.LiveTimingRateLimit,
		Timeout:          cfg.LiveTimingTimeout,
		BreakerThreshold: cfg.CircuitBreakerThreshold,
	}, log)

	var refresher *services.SessionRefresher
	if cfg.EnableSessionRefresh {
		refresher = services.NewSessionRefresher(timingClient, cacheService, log, cfg.SessionRefreshInterval)
		if err := refresher.Start(); err != nil {
			log.Errorf("Failed to start session refresher: %v", err)
		} else {
			defer refresher.Stop()
		}
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler(timingClient)
	router.GET("/health", healthHandler.GetHealth)

	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, cacheService, trackService, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
