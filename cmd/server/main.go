package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neuraflow/internal/config"
	"neuraflow/internal/handlers"
	"neuraflow/internal/middleware"
	mongorepo "neuraflow/internal/repositories/mongodb"
	"neuraflow/internal/services"
	"neuraflow/pkg/cache"
	"neuraflow/pkg/database"
	"neuraflow/pkg/exchange"
	"neuraflow/pkg/logger"
	"neuraflow/pkg/relay"
	"neuraflow/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB and apply migrations
	mongodb, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongodb.Close()

	if err := database.NewMigrator(mongodb.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: the exchange-rate cache degrades to a local
	// in-process entry when it is unavailable.
	var rateCache services.Cache
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, using in-process rate cache only")
	} else {
		defer redisCache.Close()
		rateCache = redisCache
	}

	// Outbound integrations
	notifier := relay.NewClient(&relay.Config{
		Endpoint: cfg.Webhook.ForwardURL,
		Secret:   cfg.Webhook.OutboundSecret,
		Timeout:  cfg.Webhook.Timeout,
	}, appLogger)
	rateProvider := exchange.NewHTTPProvider(cfg.Currency.RateAPIURL)

	// Repositories and services
	reviewRepo := mongorepo.NewReviewRepository(mongodb.Database)
	reviewService := services.NewReviewService(reviewRepo, notifier, appLogger)
	currencyService := services.NewCurrencyService(rateProvider, rateCache, cfg.Currency, appLogger)
	pricingService := services.NewPricingService(currencyService, appLogger)

	// Handlers
	reviewHandler := handlers.NewReviewHandler(reviewService)
	webhookHandler := handlers.NewWebhookHandler(cfg.Webhook, notifier, appLogger)
	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	pricingHandler := handlers.NewPricingHandler(pricingService)

	// Initialize Gin router
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		appLogger.Fatalf("Failed to set trusted proxies: %v", err)
	}

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupReviewRoutes(v1, reviewHandler, cfg.Security.AdminSecret)
		routes.SetupWebhookRoutes(v1, webhookHandler)
		routes.SetupCurrencyRoutes(v1, currencyHandler, pricingHandler)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := mongodb.Ping(); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting %s on port %d", cfg.App.Name, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
	appLogger.Info("Server stopped")
}
