package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campusworks/job-board/docs"
	"github.com/campusworks/job-board/internal/api/handler"
	"github.com/campusworks/job-board/internal/api/middleware"
	"github.com/campusworks/job-board/internal/core/ports"
	"github.com/campusworks/job-board/internal/core/service"
	mongodb "github.com/campusworks/job-board/internal/infrastructure/db/mongo"
	"github.com/campusworks/job-board/internal/infrastructure/http/handlers"
	"github.com/campusworks/job-board/internal/pkg/config"
	"github.com/campusworks/job-board/internal/ratelimit"
)

// Per-operation rate policies. Every policy shares the one-minute window; the
// limiter itself is policy-agnostic.
const (
	rateWindow      = time.Minute
	listJobsLimit   = 50
	mutateJobLimit  = 10
	authLimit       = 10
	adminReadLimit  = 20
	adminWriteLimit = 10
)

// NewRouter builds the Echo instance with the full request pipeline wired:
// for every gated route the stages run strictly rate limit → auth (→ admin)
// → validation → domain handler, and the first failing stage short-circuits.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client, rateStore ratelimit.Store, authService ports.AuthService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)

	jobService := service.NewJobService(jobRepo, log)
	userService := service.NewUserService(userRepo, log)
	verifier := service.NewTokenVerifier(cfg.Auth.JWTSecret)

	limiter := ratelimit.New(rateStore)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	userHandler := handler.NewUserHandler(userService)

	requireAuth := middleware.Auth(verifier)
	requireAdmin := middleware.Admin(cfg.Auth.AdminEmail)
	rate := func(max int) echo.MiddlewareFunc {
		return middleware.RateLimit(limiter, max, rateWindow)
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, rate(authLimit))
	e.POST("/auth/login", authHandler.Login, rate(authLimit))

	// --- Job routes ---
	jobs := e.Group("/api")
	jobs.GET("/jobs", jobHandler.List, rate(listJobsLimit))
	jobs.POST("/jobs", jobHandler.Create, rate(mutateJobLimit), requireAuth)
	jobs.PUT("/jobs", jobHandler.Update, rate(mutateJobLimit), requireAuth)
	jobs.DELETE("/jobs", jobHandler.Delete, rate(mutateJobLimit), requireAuth)

	// --- Admin routes ---
	admin := e.Group("/api/admin")
	admin.GET("/users", userHandler.List, rate(adminReadLimit), requireAuth, requireAdmin)
	admin.DELETE("/users", userHandler.Delete, rate(adminWriteLimit), requireAuth, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
