// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/backend"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/infrastructure/redis"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/interfaces/http"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/interfaces/http/handlers"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/pkg/logger"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		appLog.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		appLog.Fatalf("Redis health check failed: %v", err)
	}

	// Wire the session service dependencies
	deps := handlers.Deps{
		Config:   cfg,
		Backend:  backend.NewClient(cfg, appLog),
		Sessions: session.NewRedisStore(redisClient.GetClient(), cfg.Session.GuestTagTTL),
		Log:      appLog,
	}

	// Create and start HTTP server
	server := http.NewServer(deps, redisClient.GetClient())

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			appLog.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLog.Info("Server shutdown completed")
}
