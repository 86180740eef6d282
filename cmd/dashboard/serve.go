package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http"
	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/handlers"
	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/middleware"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/clients/acl"
	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/realtime"
	redisstore "github.com/Yukimura-Hanzo/konoha-project/internal/adapters/redis"
	"github.com/Yukimura-Hanzo/konoha-project/internal/app"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/auth"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/health"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/httpclient"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/telemetry"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

const (
	downstreamName      = "dashboard-api"
	otelShutdownTimeout = 5 * time.Second
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	registry.Register(do.MustInvoke[*redisstore.ViewStore](injector))

	// Hijacked progress streams are not tracked by net/http; end them when
	// shutdown begins so draining does not wait on them.
	hub := do.MustInvoke[*realtime.Hub](injector)
	server.OnShutdown(hub.Close)

	redisClient := do.MustInvoke[*redis.Client](injector)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		_ = redisClient.Close()
		_ = otel.Shutdown(context.Background())
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := redisClient.Close(); err != nil {
		logger.Error("redis close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// dashboardMetrics keeps a disabled *telemetry.Metrics from becoming a
// non-nil interface holding a nil pointer.
func dashboardMetrics(m *telemetry.Metrics) ports.DashboardMetrics {
	if m == nil {
		return nil
	}
	return m
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Outbound: downstream dashboard API behind the anti-corruption layer.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, downstreamName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTaskClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BudgetClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewBudgetClient(client, logger), nil
	})

	// View counters.
	do.Provide(injector, func(_ do.Injector) (*redis.Client, error) {
		return redisstore.NewClient(&cfg.Redis), nil
	})

	do.Provide(injector, func(i do.Injector) (*redisstore.ViewStore, error) {
		client := do.MustInvoke[*redis.Client](i)
		return redisstore.NewViewStore(client, cfg.Redis.KeyPrefix), nil
	})

	// Progress fan-out.
	do.Provide(injector, func(_ do.Injector) (*realtime.Hub, error) {
		return realtime.NewHub(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardMetrics, error) {
		return dashboardMetrics(do.MustInvoke[*telemetry.Metrics](i)), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		client := do.MustInvoke[ports.TaskClient](i)
		hub := do.MustInvoke[*realtime.Hub](i)
		metrics := do.MustInvoke[ports.DashboardMetrics](i)
		return app.NewTaskService(client, hub, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BudgetService, error) {
		client := do.MustInvoke[ports.BudgetClient](i)
		metrics := do.MustInvoke[ports.DashboardMetrics](i)
		return app.NewBudgetService(client, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ViewService, error) {
		store := do.MustInvoke[*redisstore.ViewStore](i)
		metrics := do.MustInvoke[ports.DashboardMetrics](i)
		return app.NewViewService(store, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Client.Timeout)), nil
	})

	// Inbound: handlers, router, server.
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		tasks := do.MustInvoke[ports.TaskService](i)
		return adapthttp.Handlers{
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Tasks:  handlers.NewTaskHandler(tasks),
			Budget: handlers.NewBudgetHandler(do.MustInvoke[ports.BudgetService](i)),
			Views:  handlers.NewViewHandler(do.MustInvoke[ports.ViewService](i)),
			Stream: handlers.NewStreamHandler(tasks, do.MustInvoke[*realtime.Hub](i), &cfg.Realtime),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		pipeline := middleware.Pipeline{
			Logger:         logger,
			Metrics:        metrics,
			Verifier:       auth.NewVerifier(&cfg.Auth),
			RequestTimeout: cfg.Server.RequestTimeout,
		}
		return adapthttp.NewRouter(h, pipeline.Middlewares()...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
