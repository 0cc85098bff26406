package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kaskita/payment-service/internal/api"
	"github.com/kaskita/payment-service/internal/cache"
	"github.com/kaskita/payment-service/internal/config"
	"github.com/kaskita/payment-service/internal/gateway"
	"github.com/kaskita/payment-service/internal/interfaces"
	"github.com/kaskita/payment-service/internal/queue"
	"github.com/kaskita/payment-service/internal/repository"
	"github.com/kaskita/payment-service/internal/service"
	"github.com/kaskita/payment-service/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize telemetry
	if err := telemetry.Init("payment-service", cfg.JaegerEndpoint); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Payment Service")

	// Connect to PostgreSQL
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		telemetry.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repository
	repo := repository.NewTransactionRepository(db)

	// Connect to Redis (optional)
	var statusCache interfaces.StatusCache
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		statusCache = cache.NewStatusCache(redisClient)
	}

	// Connect to Kafka (optional)
	var publisher interfaces.EventPublisher
	if cfg.KafkaBrokers != "" {
		kafkaPublisher := queue.NewPublisher(cfg.KafkaBrokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Initialize Midtrans gateway client
	snap := gateway.NewSnapClient(cfg.MidtransSnapURL, cfg.MidtransServerKey)

	// Initialize service and router
	payments := service.NewPayments(snap, repo, statusCache, publisher)
	r := api.NewRouter(payments)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		telemetry.Logger.Info("Payment Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
