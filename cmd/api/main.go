package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-config-service/internal/api/http"
	"github.com/spec-kit/helpdesk-config-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-config-service/internal/auth"
	"github.com/spec-kit/helpdesk-config-service/internal/cache"
	"github.com/spec-kit/helpdesk-config-service/internal/config"
	"github.com/spec-kit/helpdesk-config-service/internal/defaults"
	"github.com/spec-kit/helpdesk-config-service/internal/events"
	"github.com/spec-kit/helpdesk-config-service/internal/observability"
	"github.com/spec-kit/helpdesk-config-service/internal/persistence"
	"github.com/spec-kit/helpdesk-config-service/internal/repository"
	"github.com/spec-kit/helpdesk-config-service/internal/service"
	"github.com/spec-kit/helpdesk-config-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	configRepo := repository.NewFieldConfigurationRepository(pool)
	optionRepo := repository.NewFieldOptionRepository(pool)
	tenantRepo := repository.NewTenantRepository(pool)

	resolutionCache := cache.NewResolutionCache(redis.Client, cfg.Redis.CacheTTL(), logger)
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartCacheInvalidator(dispatcher, resolutionCache, logger)

	resolver := service.NewResolverService(service.ResolverDependencies{
		ConfigRepo: configRepo,
		OptionRepo: optionRepo,
		Defaults:   defaults.NewProvider(),
		Cache:      resolutionCache,
		Logger:     logger,
	})
	aggregator := service.NewAggregatorService(resolver)
	writer := service.NewWriterService(service.WriterDependencies{
		DB:         pool,
		ConfigRepo: configRepo,
		OptionRepo: optionRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	authService := service.NewAuthService(*cfg, tenantRepo)
	tenantMiddleware := auth.NewTenantMiddleware(authService.TokenManager(), tenantRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:           handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:             handlers.NewAuthHandler(authService),
		Configuration:    handlers.NewConfigurationHandler(aggregator, writer),
		TenantMiddleware: tenantMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
