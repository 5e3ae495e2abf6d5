package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitlog/exercise-tracker/internal/api/handler"
	"github.com/fitlog/exercise-tracker/internal/core/service"
	mongostore "github.com/fitlog/exercise-tracker/internal/infrastructure/db/mongo"
	redisstore "github.com/fitlog/exercise-tracker/internal/infrastructure/db/redis"
	"github.com/fitlog/exercise-tracker/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tracker"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	exerciseRepo := mongostore.NewExerciseRepository(db)
	logCache := redisstore.NewLogCache(rdb)

	userService := service.NewUserService(userRepo, log)
	exerciseService := service.NewExerciseService(userRepo, exerciseRepo, logCache, log)

	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/users", userHandler.Create)
	apiGroup.GET("/users", userHandler.List)
	apiGroup.POST("/users/:userId/exercises", exerciseHandler.Add)
	apiGroup.GET("/users/:userId/logs", exerciseHandler.Log)

	// --- Health probes and metrics (no /api prefix) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
