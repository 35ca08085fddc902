package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/observability"
	"openhours/backend/internal/service/availability"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultMaxBodyBytes   = 1 << 20
)

type availabilityService interface {
	Compute(ctx context.Context, in availability.ComputeInput) (domain.AvailabilityResult, error)
	Check(ctx context.Context, in availability.CheckInput) (domain.AvailabilityResult, error)
	ReplaceBusy(ctx context.Context, in availability.ReplaceBusyInput) (int, error)
}

// ReadinessCheck is run by GET /ready. A nil error means the dependency
// can serve traffic.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Options struct {
	RequestTimeout     time.Duration
	MaxBodyBytes       int64
	CORSAllowedOrigins []string
	Readiness          []ReadinessCheck
	Metrics            *observability.Metrics
}

type Server struct {
	svc       availabilityService
	log       *slog.Logger
	metrics   *observability.Metrics
	readiness []ReadinessCheck
}

func NewRouter(svc availabilityService, log *slog.Logger, opts Options) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	s := &Server{
		svc:       svc,
		log:       log.With(slog.String("component", "http.availability")),
		metrics:   opts.Metrics,
		readiness: opts.Readiness,
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(withAccessLog(log.With(slog.String("component", "http")), opts.Metrics))
	if len(opts.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", s.health)
	router.Get("/ready", s.ready)
	router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(withBodyLimit(opts.MaxBodyBytes))
		r.Use(withTimeout(opts.RequestTimeout))

		r.Post("/availability", s.getAvailability)
		r.Post("/availability/check", s.checkAvailability)
		r.Put("/calendars/{calendarID}/busy", s.replaceBusyPeriods)
	})

	return otelhttp.NewHandler(router, "openhours.http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
