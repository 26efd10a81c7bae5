package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/showcatalog/catalog-api/internal/api/handler"
	"github.com/showcatalog/catalog-api/internal/api/middleware"
	"github.com/showcatalog/catalog-api/internal/core/service"
	"github.com/showcatalog/catalog-api/internal/infrastructure/config"
	"github.com/showcatalog/catalog-api/internal/infrastructure/db/postgres"
	healthhandlers "github.com/showcatalog/catalog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	showRepo := postgres.NewShowRepository(pool)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, log)
	showService := service.NewShowService(showRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	showHandler := handler.NewShowHandler(showService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- API routes ---
	e.POST("/access-token", authHandler.Login)
	e.POST("/signup", authHandler.Signup, authMiddleware)
	e.POST("/shows", showHandler.Search, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health-check", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health-check/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
