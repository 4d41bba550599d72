package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/eaglesemanation/wsexport/internal/adapter/graphql"
	httpAdapter "github.com/eaglesemanation/wsexport/internal/adapter/http"
	"github.com/eaglesemanation/wsexport/internal/adapter/http/handler"
	postgresRepo "github.com/eaglesemanation/wsexport/internal/adapter/repository/postgres"
	redisRepo "github.com/eaglesemanation/wsexport/internal/adapter/repository/redis"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/config"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/idgen"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/logger"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/metrics"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/postgres"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/redis"
	"github.com/eaglesemanation/wsexport/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Register metrics
	m := metrics.New()

	// Connect to Redis when the document cache is configured
	var redisClient *redislib.Client
	if cfg.CacheEnabled() {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	}

	// Connect to PostgreSQL when run history is configured
	var pool *pgxpool.Pool
	if cfg.RunHistoryEnabled() {
		pool, err = postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()
		log.Info().Msg("connected to postgres")

		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Upstream GraphQL client, shared across sessions
	client := graphql.NewClient(cfg.GraphQLEndpoint, cfg.GraphQLProfile, cfg.GraphQLTimeout, m, appLogger)
	idGen := idgen.NewULIDGenerator()

	var recorder usecase.RunRecorder
	var runsHandler *handler.RunsHandler
	if pool != nil {
		runRepo := postgresRepo.NewRunRepository(pool, m)
		recorder = runRepo
		runsHandler = handler.NewRunsHandler(runRepo)
	}

	// Each request binds its own bearer token to a fresh use case
	newService := func(token string) handler.ExportService {
		sources := graphql.NewSources(client, token)
		return usecase.NewExportUseCase(sources, sources, sources, sources, idGen, recorder, appLogger)
	}

	var cache usecase.DocumentCache
	if redisClient != nil {
		cache = redisRepo.NewDocumentCache(redisClient)
	}

	exportHandler := handler.NewExportHandler(newService, cache, cfg.CacheTTL, m, appLogger)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ExportHandler: exportHandler,
		RunsHandler:   runsHandler,
		HealthHandler: healthHandler,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
