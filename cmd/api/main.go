package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/orgdesk/org-service/internal/api/http"
	"github.com/orgdesk/org-service/internal/api/http/handlers"
	"github.com/orgdesk/org-service/internal/auth"
	"github.com/orgdesk/org-service/internal/config"
	"github.com/orgdesk/org-service/internal/events"
	"github.com/orgdesk/org-service/internal/observability"
	"github.com/orgdesk/org-service/internal/persistence"
	"github.com/orgdesk/org-service/internal/repository"
	"github.com/orgdesk/org-service/internal/service"
	"github.com/orgdesk/org-service/internal/worker"
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

	err = persistence.WithPostgres(ctx, cfg.Postgres, logger, func(pg *persistence.Postgres) error {
		return serve(ctx, cfg, logger, pg)
	})
	if err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger, pg *persistence.Postgres) error {
	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			return err
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(dispatcher, logger)

	uow := repository.NewUnitOfWork(pg.PoolHandle())
	departamentos := service.NewDepartamentoStore(service.DepartamentoDependencies{
		UnitOfWork: uow,
		Redis:      redis.Handle(),
		CacheTTL:   cfg.Redis.CacheTTL(),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	empresas := service.NewEmpresaService(uow)
	authService := service.NewAuthService(cfg.Auth)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	readiness := map[string]handlers.Pinger{"postgres": pg}
	if cfg.Redis.Enabled {
		readiness["redis"] = redis
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness),
		Auth:           handlers.NewAuthHandler(authService),
		Empresas:       handlers.NewEmpresasHandler(empresas),
		Departamentos:  handlers.NewDepartamentosHandler(departamentos),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	return waitForShutdown(logger, app, listenErr, shutdownSignals())
}

func shutdownSignals() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}

// waitForShutdown returns once the listener fails or a signal arrives, so the
// caller's deferred releases run in both cases.
func waitForShutdown(logger *zap.Logger, app *fiber.App, listenErr <-chan error, signals <-chan os.Signal) error {
	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("fiber listen: %w", err)
		}
		return nil
	case sig := <-signals:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		return app.Shutdown()
	}
}
