package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/api/routes"
	"fyyur/internal/activity"
	"fyyur/internal/shared/config"
	"fyyur/internal/shared/database"
	"fyyur/internal/shared/middleware"
	"fyyur/internal/shared/render"
	"fyyur/pkg/logger"
	"fyyur/pkg/ratelimit"
	"fyyur/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title        Fyyur API
// @version      1.0
// @description  Venues, artists and the shows that connect them.
// @BasePath     /api/v1
func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	logger.SetDefault(logger.NewWithWriter(os.Stdout, cfg.LogLevel))
	appLogger = logger.GetDefault()

	gin.SetMode(cfg.GinMode)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Rate limiter needs Redis; without it requests are not limited
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.Redis != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			BrowseRequests:  cfg.RateLimit.BrowseRequests,
			SearchRequests:  cfg.RateLimit.SearchRequests,
			WriteRequests:   cfg.RateLimit.WriteRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	publisher := newPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing activity publisher", slog.Any("error", err))
		}
	}()

	router, err := setupRouter(cfg, db, rateLimiter, publisher)
	if err != nil {
		appLogger.Error("failed to set up router", slog.Any("error", err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port)),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("redis", db.Redis != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("activity_feed", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// newPublisher connects the Kafka activity producer, or drops events when
// Kafka is disabled or unreachable. Listings never depend on the broker.
func newPublisher(cfg *config.Config) activity.Publisher {
	appLogger := logger.GetDefault()
	if !cfg.Kafka.Enabled {
		appLogger.Info("Activity feed disabled")
		return activity.NopPublisher{}
	}

	producerConfig := activity.DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.Topic = cfg.Kafka.ActivityTopic
	producerConfig.ClientID = cfg.Kafka.ClientID

	publisher, err := activity.NewKafkaPublisher(producerConfig)
	if err != nil {
		appLogger.Error("Failed to initialize activity producer", slog.Any("error", err))
		appLogger.Info("Continuing without activity feed")
		return activity.NopPublisher{}
	}
	return publisher
}

func setupRouter(cfg *config.Config, db *database.DB, rateLimiter *ratelimit.RateLimiter, publisher activity.Publisher) (*gin.Engine, error) {
	engine := gin.New()
	appLogger := logger.GetDefault()

	renderer, err := render.New(web.FS)
	if err != nil {
		return nil, err
	}
	engine.HTMLRender = renderer
	pages := render.NewPages(render.NewFlasher(cfg.Session))

	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(appLogger),
		middleware.Recovery(cfg.GetAPIBasePath(), pages.ServerError),
	)

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	routes.NewRouter(cfg, db, publisher, pages).SetupRoutes(engine)

	return engine, nil
}
