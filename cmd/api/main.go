// @title Pageview Analytics API
// @version 1.0
// @description Collects page-view events and serves the aggregated analytics dashboard.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	dashboardHttp "pageview-analytics/internal/dashboard/adapters/http/fiber"
	dashboardStore "pageview-analytics/internal/dashboard/adapters/sqlstore"
	dashboardUsecase "pageview-analytics/internal/dashboard/core/usecase"

	eventsHttp "pageview-analytics/internal/events/adapters/http/fiber"
	eventsStore "pageview-analytics/internal/events/adapters/sqlstore"
	eventsUsecase "pageview-analytics/internal/events/core/usecase"

	"pageview-analytics/internal/config"
	"pageview-analytics/internal/database"
	"pageview-analytics/internal/geoip"
	"pageview-analytics/internal/jobs"
	"pageview-analytics/internal/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "pageview-analytics/docs"
)

const (
	shutdownTimeout  = 10 * time.Second
	retentionTimeout = 5 * time.Minute
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// DB connection
	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{
		Dialect:         cfg.Dialect(),
		DSN:             cfg.DBDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database connection", "error", err)
		}
	}()

	logger.Info("running database migrations", "driver", string(cfg.Dialect()))
	if err := database.Migrate(db, cfg.Dialect()); err != nil {
		return err
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath, logger)
	if err != nil {
		return err
	}
	defer resolver.Close()

	// Repositories
	eventReader := dashboardStore.NewEventReader(dashboardStore.NewSQLDB(db), cfg.Dialect())
	eventRepository := eventsStore.NewEventRepository(eventsStore.NewSQLDB(db), cfg.Dialect())

	// Usecases
	getDashboardUC := dashboardUsecase.NewGetDashboardUseCase(eventReader, dashboardUsecase.Options{
		MaxRows:      cfg.MaxEventRows,
		FetchTimeout: cfg.FetchTimeout,
		Location:     cfg.Location(),
		Logger:       logger,
	})
	storeOpts := eventsUsecase.StoreEventOptions{}
	if resolver.Enabled() {
		storeOpts.Resolver = resolver
	}
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository, storeOpts)
	pruneEventsUC := eventsUsecase.NewPruneEventsUseCase(eventRepository, cfg.Retention(), logger)

	// Background jobs
	scheduler := jobs.NewScheduler(logger)
	if pruneEventsUC.Enabled() {
		err := scheduler.AddJob("retention", cfg.RetentionSchedule, retentionTimeout, func(ctx context.Context) error {
			_, err := pruneEventsUC.Execute(ctx)
			return err
		})
		if err != nil {
			return err
		}
	} else {
		logger.Info("event retention disabled")
	}
	scheduler.Start()

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "pageview-analytics",
		ProxyHeader:           cfg.ProxyHeader,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableStartupMessage: !cfg.IsDevelopment(),
	})
	app.Use(logging.RequestLogger(logger))

	// dashboard endpoints
	dashboardHandler := dashboardHttp.NewDashboardHandler(getDashboardUC)
	app.Get("/api/analytics/dashboard", dashboardHandler.GetDashboard)

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC)
	app.Post("/api/events", eventsHandler.CreateEvent)
	app.Post("/api/events/bulk", eventsHandler.BulkCreateEvents)

	app.Get("/healthz", healthz(db))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.ServerAddr())
	}()

	logger.Info("server started", "addr", cfg.ServerAddr(), "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-listenErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	scheduler.Stop(shutdownCtx)

	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("fiber shutdown error", "error", err)
	}

	logger.Info("server exiting")
	return nil
}

func healthz(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
