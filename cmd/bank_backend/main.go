package main

import (
	"log/slog"
	"os"

	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/core/services"
	"github.com/awesomegic/bank_account_system/internal/events"
	"github.com/awesomegic/bank_account_system/internal/events/kafka"
	"github.com/awesomegic/bank_account_system/internal/handlers"
	"github.com/awesomegic/bank_account_system/internal/middleware"
	"github.com/awesomegic/bank_account_system/internal/platform/config"
	"github.com/awesomegic/bank_account_system/internal/repositories/memory"
	"github.com/awesomegic/bank_account_system/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All state is in-process; each server run starts from an empty registry.
	repos := memory.NewRepositoryProvider()

	var publisher portssvc.EventPublisher = events.NewNoopPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if cerr := kafkaPublisher.Close(); cerr != nil {
				logger.Error("Error closing Kafka publisher", slog.String("error", cerr.Error()))
			}
		}()
		publisher = kafkaPublisher
		logger.Info("Event publishing enabled", slog.String("topic", cfg.KafkaTopic))
	}

	container := services.NewServiceContainer(
		repos,
		validation.NewDefaultTransactionValidator(),
		validation.NewDefaultInterestRuleValidator(),
		publisher,
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	rateLimiter := limiter.New(memorystore.NewStore(), rate)

	handlers.RegisterRoutes(r, container, middleware.RateLimit(rateLimiter))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
