// Command server runs the job board HTTP API.
//
// @title        Job Board API
// @version      1.0
// @description  Students and employers sign up, employers post job listings,
// @description  and an admin moderates users and jobs.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusworks/job-board/internal/api"
	"github.com/campusworks/job-board/internal/core/service"
	mongodb "github.com/campusworks/job-board/internal/infrastructure/db/mongo"
	redisdb "github.com/campusworks/job-board/internal/infrastructure/db/redis"
	"github.com/campusworks/job-board/internal/pkg/config"
	"github.com/campusworks/job-board/internal/ratelimit"
	"github.com/campusworks/job-board/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index bootstrap failed")
	}
	if err := jobRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("job index bootstrap failed")
	}

	authService := service.NewAuthService(
		userRepo,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.AdminEmail,
		cfg.Auth.AdminPassword,
		log,
	)
	if err := authService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	var rateStore ratelimit.Store
	switch cfg.Rate.Backend {
	case "redis":
		rateStore = redisdb.NewRateStore(rdb)
	default:
		rateStore = ratelimit.NewMemoryStore()
	}

	e := api.NewRouter(cfg, log, db, rdb, rateStore, authService)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
