// Package breaker guards a calendar store with a circuit breaker so a failing
// backend is reported as unavailable instead of being hammered.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/observability"
	"openhours/backend/internal/store"
)

type Config struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      10,
	}
}

type Store struct {
	next store.CalendarStore
	cb   *gobreaker.CircuitBreaker
}

func New(next store.CalendarStore, cfg Config, logger *slog.Logger, metrics *observability.Metrics) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	metrics.BreakerState(cfg.Name, gobreaker.StateClosed.String())

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			metrics.BreakerState(name, to.String())
		},
		IsSuccessful: func(err error) bool {
			// Rejected input and canceled callers say nothing about backend health.
			return err == nil ||
				domain.IsClientError(err) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &Store{next: next, cb: cb}
}

func (s *Store) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.next.ListBusy(ctx, calendarIDs, rangeStart, rangeEnd)
	})
	if err != nil {
		return nil, mapErr(err)
	}
	busy, _ := res.([]domain.RawBusyPeriod)
	return busy, nil
}

func (s *Store) ReplaceBusy(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.ReplaceBusy(ctx, calendarID, r, busy)
	})
	return mapErr(err)
}

// Ping bypasses the breaker so readiness reflects the backend itself.
func (s *Store) Ping(ctx context.Context) error {
	if p, ok := s.next.(store.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *Store) State() gobreaker.State {
	return s.cb.State()
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", store.ErrSourceUnavailable, err)
	}
	return err
}
