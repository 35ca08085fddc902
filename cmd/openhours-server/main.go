package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"

	"openhours/backend/internal/config"
	"openhours/backend/internal/observability"
	"openhours/backend/internal/service/availability"
	"openhours/backend/internal/store"
	"openhours/backend/internal/store/breaker"
	"openhours/backend/internal/store/memory"
	"openhours/backend/internal/store/postgres"
	"openhours/backend/internal/store/rediscache"
	"openhours/backend/internal/telemetry"
	grpcTransport "openhours/backend/internal/transport/grpc"
	"openhours/backend/internal/transport/rest"
)

const serviceName = "openhours-server"

func main() {
	os.Exit(run())
}

// run wires and serves the process. It returns the exit code instead of
// exiting so deferred cleanup (tracing flush, database and redis close) runs.
func run() int {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		return 1
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", serviceName),
	)
	slog.SetDefault(log)

	log.Info("starting",
		slog.String("grpc_addr", cfg.GRPCAddr()),
		slog.String("http_addr", cfg.HTTPAddr),
		slog.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSampleRatio,
	})
	if err != nil {
		log.Error("tracing setup failed", slog.Any("err", err))
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracing shutdown failed", slog.Any("err", err))
		}
	}()

	metrics := observability.NewMetrics("openhours")

	var (
		calendars store.CalendarStore
		readiness []rest.ReadinessCheck
	)
	if cfg.DatabaseURL == "" {
		log.Warn("no database configured; busy periods are kept in memory")
		calendars = memory.New()
	} else {
		log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
		db, err := postgres.Open(ctx, cfg.DatabaseURL, postgres.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		})
		if err != nil {
			args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
			log.Error("database connection failed", args...)
			return 1
		}
		defer func() {
			if err := postgres.Close(db); err != nil {
				log.Warn("database close failed", slog.Any("err", err))
			}
		}()
		calendars = postgres.NewBusyRepo(db)
	}

	calendars = breaker.New(calendars, breaker.Config{
		Name:             "calendar_store",
		MaxRequests:      cfg.BreakerMaxRequests,
		Interval:         cfg.BreakerInterval,
		Timeout:          cfg.BreakerTimeout,
		FailureThreshold: cfg.BreakerFailureRatio,
		MinRequests:      cfg.BreakerMinRequests,
	}, log.With(slog.String("component", "breaker")), metrics)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn("redis close failed", slog.Any("err", err))
			}
		}()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis ping failed; cache will fall through", slog.Any("err", err), slog.String("redis_addr", cfg.RedisAddr))
		}
		calendars = rediscache.New(calendars, rdb,
			rediscache.WithTTL(cfg.CacheTTL),
			rediscache.WithLogger(log.With(slog.String("component", "busy_cache"))),
			rediscache.WithMetrics(metrics),
		)
		readiness = append(readiness, rest.ReadinessCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	svc := availability.NewService(calendars,
		availability.WithMaxRange(time.Duration(cfg.MaxRangeDays)*24*time.Hour),
		availability.WithDefaultCalendar(cfg.DefaultCalendar),
		availability.WithMetrics(metrics),
	)
	readiness = append([]rest.ReadinessCheck{{Name: "calendar_store", Check: svc.Ready}}, readiness...)

	grpcServer, healthServer := grpcTransport.NewServer(svc, log, cfg.GRPCRequestTimeout)

	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: rest.NewRouter(svc, log, rest.Options{
			RequestTimeout:     cfg.HTTPRequestTimeout,
			MaxBodyBytes:       cfg.HTTPMaxBodyBytes,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			Readiness:          readiness,
			Metrics:            metrics,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		log.Error("grpc listen failed", slog.Any("err", err), slog.String("grpc_addr", cfg.GRPCAddr()))
		return 1
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	log.Info("servers started", slog.String("grpc_addr", cfg.GRPCAddr()), slog.String("http_addr", cfg.HTTPAddr))

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped with error", slog.Any("err", err))
			shutdown(log, grpcServer, healthServer, httpServer, cfg.ShutdownTimeout)
			return 1
		}
	}
	shutdown(log, grpcServer, healthServer, httpServer, cfg.ShutdownTimeout)
	return 0
}

func shutdown(log *slog.Logger, s *grpc.Server, hs *health.Server, hsrv *http.Server, timeout time.Duration) {
	log.Info("shutting down servers", slog.Duration("timeout", timeout))
	hs.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := hsrv.Shutdown(ctx); err != nil {
		log.Warn("http graceful shutdown failed", slog.Any("err", err))
	}

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("grpc server stopped")
	case <-ctx.Done():
		log.Warn("grpc graceful shutdown timed out; forcing stop")
		s.Stop()
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func databaseLogArgs(databaseURL string) []any {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return []any{slog.String("db_url", "invalid")}
	}
	name := strings.TrimPrefix(u.Path, "/")
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "default"
	}
	if host == "" {
		host = "unknown"
	}
	if name == "" {
		name = "unknown"
	}
	return []any{
		slog.String("db_host", host),
		slog.String("db_port", port),
		slog.String("db_name", name),
	}
}
