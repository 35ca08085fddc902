package breaker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/store"
)

type fakeStore struct {
	calls int
	err   error
}

func (f *fakeStore) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []domain.RawBusyPeriod{{Start: "2026-01-05T10:00:00Z", End: "2026-01-05T11:00:00Z", SourceID: calendarIDs[0]}}, nil
}

func (f *fakeStore) ReplaceBusy(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error {
	f.calls++
	return f.err
}

func testConfig() Config {
	cfg := DefaultConfig("test")
	cfg.MinRequests = 2
	cfg.FailureThreshold = 0.5
	cfg.Timeout = time.Hour
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_PassesThrough(t *testing.T) {
	next := &fakeStore{}
	s := New(next, testConfig(), quietLogger(), nil)

	got, err := s.ListBusy(context.Background(), []string{"primary"}, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("ListBusy error: %v", err)
	}
	if len(got) != 1 || got[0].SourceID != "primary" {
		t.Fatalf("got = %+v", got)
	}
}

func TestStore_OpensAfterFailuresAndReportsUnavailable(t *testing.T) {
	boom := errors.New("connection refused")
	next := &fakeStore{err: boom}
	s := New(next, testConfig(), quietLogger(), nil)

	for i := 0; i < 2; i++ {
		_, err := s.ListBusy(context.Background(), []string{"primary"}, time.Time{}, time.Time{})
		if !errors.Is(err, boom) {
			t.Fatalf("call %d err = %v, want %v", i, err, boom)
		}
	}
	if s.State() != gobreaker.StateOpen {
		t.Fatalf("state = %s, want open", s.State())
	}

	_, err := s.ListBusy(context.Background(), []string{"primary"}, time.Time{}, time.Time{})
	if !errors.Is(err, store.ErrSourceUnavailable) {
		t.Fatalf("err = %v, want %v", err, store.ErrSourceUnavailable)
	}
	if next.calls != 2 {
		t.Fatalf("calls = %d, want 2 (open breaker must not call through)", next.calls)
	}

	err = s.ReplaceBusy(context.Background(), "primary", domain.DateRange{}, nil)
	if !errors.Is(err, store.ErrSourceUnavailable) {
		t.Fatalf("ReplaceBusy err = %v, want %v", err, store.ErrSourceUnavailable)
	}
}

func TestStore_ClientErrorsDoNotTrip(t *testing.T) {
	next := &fakeStore{err: domain.NewValidationError(domain.CodeInvalidBusyPeriod, "bad")}
	s := New(next, testConfig(), quietLogger(), nil)

	for i := 0; i < 5; i++ {
		err := s.ReplaceBusy(context.Background(), "primary", domain.DateRange{}, nil)
		if domain.CodeOf(err) != domain.CodeInvalidBusyPeriod {
			t.Fatalf("err = %v, want validation error", err)
		}
	}
	if s.State() != gobreaker.StateClosed {
		t.Fatalf("state = %s, want closed", s.State())
	}
}
