package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"todo-api/internal/config"
	"todo-api/internal/infra/adapter/persistence/memory"
	"todo-api/internal/infra/worker"
	"todo-api/internal/observability/logging"
	"todo-api/internal/observability/metrics"
	"todo-api/internal/observability/tracing"

	todoUC "todo-api/internal/usecase/todo"

	hhttp "todo-api/internal/handler/http"
	"todo-api/internal/handler/http/requestid"
	htodo "todo-api/internal/handler/http/todo"

	_ "todo-api/docs" // swagger docs
)

// @title           TODO API
// @version         1.0.0
// @description     インメモリで TODO を管理する REST API
// @description     リクエストID・構造化ログ・Prometheus メトリクスを提供します。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

const serviceName = "todo-api"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return err
	}

	logger, logCloser := logging.NewLogger(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer func() {
		if err := logCloser.Close(); err != nil {
			slog.Error("failed to close log file", slog.Any("error", err))
		}
	}()
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.Setup(tracing.Options{
		ServiceName:    serviceName,
		ServiceVersion: cfg.App.Version,
		Exporter:       cfg.Tracing.Exporter,
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}

	components, err := setupServer(cfg, logger, metrics.NewRegistry())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := runServer(ctx, cfg, logger, components)

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("failed to shutdown tracer provider", slog.Any("error", err))
	}

	return runErr
}

// ServerComponents holds everything runServer needs.
type ServerComponents struct {
	Handler   http.Handler
	Scheduler *worker.Scheduler
	Store     *memory.TodoStore
}

// setupServer wires the store, service, routes, middleware and background jobs.
func setupServer(cfg *config.ServerConfig, logger *slog.Logger, reg *prometheus.Registry) (*ServerComponents, error) {
	m := metrics.New(reg)
	workerMetrics := worker.NewWorkerMetrics(reg)

	store := memory.NewTodoStore()
	svc := &todoUC.Service{Repo: store}

	scheduler := worker.NewScheduler(logger, workerMetrics, time.UTC)
	statsJob := worker.StatsJob{Store: store, Gauge: m, Logger: logger}
	if err := scheduler.Add(worker.StatsJobName, cfg.Stats.Schedule, statsJob); err != nil {
		return nil, fmt.Errorf("schedule stats job: %w", err)
	}

	mux := setupRoutes(cfg, svc, reg)
	handler := applyMiddleware(cfg, logger, m, mux)

	return &ServerComponents{
		Handler:   handler,
		Scheduler: scheduler,
		Store:     store,
	}, nil
}

// setupRoutes registers every HTTP route.
func setupRoutes(cfg *config.ServerConfig, svc *todoUC.Service, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// RootHandler also answers unmatched GET paths with a JSON 404.
	mux.Handle("GET /", &hhttp.RootHandler{Version: cfg.App.Version})
	mux.Handle("GET /health", &hhttp.HealthHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler(reg))
	htodo.Register(mux, svc)

	// Swagger UI
	if cfg.Swagger.Enabled {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Middleware order (outermost first):
// Recover → Tracing → Metrics → Logging → Request ID → Rate Limit → Body Limit
// The mux doubles as the route table that keeps metric labels bounded.
func applyMiddleware(cfg *config.ServerConfig, logger *slog.Logger, m *metrics.Metrics, routes *http.ServeMux) http.Handler {
	chain := []func(http.Handler) http.Handler{
		hhttp.Recover(logger),
		tracing.Middleware,
		hhttp.MetricsMiddleware(m, routes),
		hhttp.Logging(logger),
		requestid.Middleware,
		hhttp.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes),
	}

	// Apply in reverse so chain[0] is outermost.
	var handler http.Handler = routes
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}
	return handler
}

// runServer serves HTTP and runs the scheduler until ctx is cancelled, then
// shuts both down gracefully.
func runServer(ctx context.Context, cfg *config.ServerConfig, logger *slog.Logger, c *ServerComponents) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           c.Handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", cfg.App.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return c.Scheduler.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
