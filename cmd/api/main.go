package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"golang.org/x/sync/errgroup"

	"osint-tracker/internal/infra/adapter/persistence/sqlite"
	"osint-tracker/internal/infra/db"
	"osint-tracker/internal/observability/logging"
	"osint-tracker/internal/observability/tracing"
	"osint-tracker/internal/pkg/config"

	contactUC "osint-tracker/internal/usecase/contact"
	findUC "osint-tracker/internal/usecase/finding"
	monUC "osint-tracker/internal/usecase/monitor"
	statsUC "osint-tracker/internal/usecase/stats"
	subjUC "osint-tracker/internal/usecase/subject"

	hhttp "osint-tracker/internal/handler/http"
	hcontact "osint-tracker/internal/handler/http/contact"
	hfinding "osint-tracker/internal/handler/http/finding"
	hmonitor "osint-tracker/internal/handler/http/monitor"
	"osint-tracker/internal/handler/http/requestid"
	hsearch "osint-tracker/internal/handler/http/search"
	hstats "osint-tracker/internal/handler/http/stats"
	hsubject "osint-tracker/internal/handler/http/subject"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logging.Level)
	if cfg.Logging.Format == "text" {
		logger = logging.NewTextLogger(cfg.Logging.Level)
	}
	slog.SetDefault(logger)

	shutdownTracing, err := initTracing(getVersion())
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer shutdownTracing()

	database, err := initDatabase(cfg)
	if err != nil {
		logger.Error("failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, cfg, database)
	runServer(logger, cfg, handler)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// initTracing installs a tracer provider so every request gets a trace
// ID in the X-Trace-Id header. Span export to stdout is opt-in via
// OTEL_TRACES_STDOUT; without it spans are recorded but not exported.
func initTracing(version string) (func(), error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("osint-tracker"),
		semconv.ServiceVersion(version),
	))
	if err != nil {
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if os.Getenv("OTEL_TRACES_STDOUT") == "true" {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			slog.Error("tracer provider shutdown failed", slog.Any("error", err))
		}
	}, nil
}

// initDatabase opens the SQLite file and creates the schema.
func initDatabase(cfg *config.Config) (*sql.DB, error) {
	path := cfg.Database.Path
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(database); err != nil {
		_ = database.Close()
		return nil, err
	}
	return database, nil
}

// setupServer wires repositories, services, routes, and the middleware
// chain into the root handler.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB) http.Handler {
	subjectSvc := &subjUC.Service{Repo: sqlite.NewSubjectRepo(database)}
	monitorSvc := &monUC.Service{
		Twitter: sqlite.NewTwitterAccountRepo(database),
		News:    sqlite.NewNewsSourceRepo(database),
	}
	findingSvc := &findUC.Service{Repo: sqlite.NewFindingRepo(database)}
	contactSvc := &contactUC.Service{Repo: sqlite.NewContactRepo(database)}
	statsSvc := &statsUC.Service{Repo: sqlite.NewSubjectRepo(database)}

	searchLimiter := hhttp.NewRateLimiter(cfg.Search.RateLimit, cfg.Search.RateWindow)

	apiMux := http.NewServeMux()
	hsubject.Register(apiMux, subjectSvc)
	hmonitor.Register(apiMux, monitorSvc)
	hfinding.Register(apiMux, findingSvc)
	hcontact.Register(apiMux, contactSvc)
	hstats.Register(apiMux, statsSvc)
	hsearch.Register(apiMux, searchLimiter.Limit)

	rootMux := http.NewServeMux()
	rootMux.Handle("/api/", hhttp.CORS(cfg.Server.AllowedOrigins)(apiMux))
	rootMux.Handle("/healthz", &hhttp.HealthHandler{DB: database, Version: getVersion()})
	rootMux.Handle("/metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, cfg, rootMux)
}

// applyMiddleware wraps the handler with the middleware chain, applied
// in reverse so the first listed runs outermost:
// Recover, Request ID, Tracing, Logging, Metrics, Body Limit, Timeout.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.Timeout(cfg.Server.RequestTimeout)(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.Recover(logger)(chain)
	return chain
}

// runServer starts the HTTP server and blocks until a shutdown signal
// arrives, then drains in-flight requests.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris guard
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
