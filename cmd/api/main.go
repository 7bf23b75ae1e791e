package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"entitysearch/cmd/internal/config"
	"entitysearch/cmd/internal/domain/sqlite"
	"entitysearch/cmd/internal/domain/sqlite/repository"
	"entitysearch/cmd/internal/http/handler"
	"entitysearch/cmd/internal/infrastructure/legalapi"
	"entitysearch/cmd/internal/service"
	"entitysearch/cmd/internal/service/jobs"
	"entitysearch/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	if err := config.LoadEnv(ctx); err != nil {
		log.Fatalf("unable to load environment: %v", err)
	}

	cfg, err := config.FromEnv(validate)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		panic(err)
	}

	// Legal API, behind the local cache
	legalClient := legalapi.NewClient(legalapi.Options{
		BaseURL:   cfg.LegalAPIURL,
		APIKey:    cfg.LegalAPIKey,
		AccountID: cfg.LegalAPIAccountID,
		Timeout:   cfg.LegalAPITimeout,
	})
	businessRepo := repository.NewBusinessRepository(db)
	lookup := service.NewBusinessLookup(legalClient, businessRepo, cfg.CacheTTL)

	// The store lives as long as the process and is shared by every request.
	store := service.NewEntityStore(lookup)
	entityService := service.NewEntityService(store, validate)
	entityRoutes := handler.NewEntityRoute(entityService)

	cleaner := jobs.NewBusinessCacheCleaner(businessRepo, cfg.CacheTTL, cfg.CacheCleanInterval)
	go cleaner.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	entityRoutes.Register(e.Group("/api"))

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down cleanly: %v", err)
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
