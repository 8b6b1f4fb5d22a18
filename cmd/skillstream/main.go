package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/kashxsh001/SkillStream/docs"
	"github.com/kashxsh001/SkillStream/internal/api"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
	"github.com/kashxsh001/SkillStream/internal/core/service"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/config"
	rediscache "github.com/kashxsh001/SkillStream/internal/infrastructure/db/redis"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/http/handlers"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/store"
	"github.com/kashxsh001/SkillStream/pkg/logger"
)

// @title                       SkillStream API
// @version                     1.0
// @description                 Course catalog with user favourites and admin course management.
// @host                        localhost:5000
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.

func main() {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Service: "skillstream"})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Service: "skillstream",
		Level:   cfg.LogLevel,
		Console: cfg.IsDevelopment(),
	})
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn().Err(envErr).Msg("could not read .env file")
	}

	// --- Persistence ---
	st, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	checks := map[string]handlers.Check{st.Driver: handlers.Check(st.Ping)}

	var cache ports.CourseCache
	if cfg.Redis.Addr != "" {
		rdb, err := rediscache.Connect(ctx, rediscache.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer rdb.Close()

		cache = rediscache.NewCourseCache(rdb, cfg.Redis.CacheTTL)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("course cache enabled")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	courses := service.NewCourseService(st.Courses, cache, log)

	e := api.NewRouter(api.Deps{
		Config:           cfg,
		Logger:           log,
		AuthService:      service.NewAuthService(st.Users, tokens, log),
		CourseService:    courses,
		FavouriteService: service.NewFavouriteService(st.Favourites, st.Courses, log),
		Gateway:          service.NewGateway(tokens, st.Users),
		HealthChecks:     checks,
	})

	// --- Serve ---
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Dur("timeout", cfg.ShutdownTimeout).Msg("forced shutdown")
		return
	}
	log.Info().Msg("server shut down gracefully")
}
