package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/aquasense/water-quality-api/docs"
	"github.com/aquasense/water-quality-api/internal/api/handler"
	"github.com/aquasense/water-quality-api/internal/api/middleware"
	"github.com/aquasense/water-quality-api/internal/core/domain"
	"github.com/aquasense/water-quality-api/internal/core/ports"
	"github.com/aquasense/water-quality-api/internal/core/service"
	"github.com/aquasense/water-quality-api/internal/infrastructure/config"
	"github.com/aquasense/water-quality-api/internal/infrastructure/db/postgres"
	redisdb "github.com/aquasense/water-quality-api/internal/infrastructure/db/redis"
	"github.com/aquasense/water-quality-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case aggregation results are computed uncached.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("waterquality"))

	// --- Dependencies ---
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Hour

	userRepo := postgres.NewUserRepository(pool)
	readingRepo := postgres.NewReadingRepository(pool)

	var cache ports.AnalyticsCache
	if rdb != nil {
		cache = redisdb.NewAnalyticsCache(rdb)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, sessionTTL)
	readingService := service.NewReadingService(readingRepo, log)
	analyticsService := service.NewAnalyticsService(readingRepo, userRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService, sessionTTL)
	readingHandler := handler.NewReadingHandler(readingService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	authOptional := middleware.OptionalAuth(cfg.JWTSecret)
	viewAllOnly := middleware.RBAC(domain.RoleResearcher, domain.RoleGovernment, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/check", authHandler.Check, authOptional)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Water reading routes ---
	water := e.Group("/api/water")
	water.POST("/reading", readingHandler.Submit, authRequired)
	water.GET("/readings", readingHandler.ListOwn, authRequired)
	water.GET("/public-readings", readingHandler.Public)

	// --- Analytics routes ---
	analytics := e.Group("/analytics/api", authRequired)
	analytics.GET("/statistics", analyticsHandler.Statistics)
	analytics.GET("/water-quality-trends", analyticsHandler.Trends)
	analytics.GET("/quality-distribution", analyticsHandler.QualityDistribution)
	analytics.GET("/location-insights", analyticsHandler.LocationInsights, viewAllOnly)
	analytics.GET("/user-statistics", analyticsHandler.UserStatistics, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
