package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/boutique-service/internal/api/http"
	"github.com/spec-kit/boutique-service/internal/api/http/handlers"
	"github.com/spec-kit/boutique-service/internal/config"
	"github.com/spec-kit/boutique-service/internal/events"
	"github.com/spec-kit/boutique-service/internal/observability"
	"github.com/spec-kit/boutique-service/internal/persistence"
	"github.com/spec-kit/boutique-service/internal/repository"
	"github.com/spec-kit/boutique-service/internal/service"
	"github.com/spec-kit/boutique-service/internal/worker"
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
	staffRepo := repository.NewStaffRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	worklogRepo := repository.NewWorklogRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	// The permissive policy reproduces the workshop's historical behavior;
	// swap in service.NewStrictPolicy(staffRepo, orderRepo) to enforce
	// referential checks.
	policy := service.NewPermissivePolicy()

	staffService := service.NewStaffService(service.StaffDependencies{
		StaffRepo:  staffRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:  orderRepo,
		Policy:     policy,
		Dispatcher: dispatcher,
	})
	worklogService := service.NewWorklogService(service.WorklogDependencies{
		WorklogRepo: worklogRepo,
		Policy:      policy,
		Dispatcher:  dispatcher,
	})
	performanceService := service.NewPerformanceService(staffRepo, worklogRepo)
	dashboardService := service.NewDashboardService(orderRepo, redis.ClientHandle(), cfg.Dashboard.CacheTTL(), logger)

	if cfg.Seed.StaffOnStart && pool != nil {
		if err := staffService.SeedIfEmpty(ctx); err != nil {
			logger.Fatal("failed to seed staff roster", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Staff:       handlers.NewStaffHandler(staffService),
		Orders:      handlers.NewOrdersHandler(orderService),
		Worklog:     handlers.NewWorklogHandler(worklogService),
		Performance: handlers.NewPerformanceHandler(performanceService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
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
