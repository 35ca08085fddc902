package rediscache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/observability"
)

type fakeStore struct {
	listCalls    int
	replaceCalls int
	busy         []domain.RawBusyPeriod

	listFn func(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error)
}

func (f *fakeStore) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	f.listCalls++
	if f.listFn != nil {
		return f.listFn(ctx, calendarIDs, rangeStart, rangeEnd)
	}
	return f.busy, nil
}

func (f *fakeStore) ReplaceBusy(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error {
	f.replaceCalls++
	f.busy = nil
	for _, b := range busy {
		f.busy = append(f.busy, domain.RawBusyPeriod{
			Start:    b.Start.Format(time.RFC3339Nano),
			End:      b.End.Format(time.RFC3339Nano),
			SourceID: calendarID,
		})
	}
	return nil
}

// memRedis implements the handful of commands the cache issues over a map.
// Any other command panics through the nil embedded interface.
type memRedis struct {
	redis.Cmdable

	data map[string]string
	ttls map[string]time.Duration
	gets int
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.gets++
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	default:
		return redis.NewStatusResult("", fmt.Errorf("unsupported value %T", value))
	}
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	vals := make([]any, len(keys))
	for i, k := range keys {
		if v, ok := m.data[k]; ok {
			vals[i] = v
		}
	}
	return redis.NewSliceResult(vals, nil)
}

func (m *memRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(m.data[key], 10, 64)
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	rangeStart = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
)

func TestEntryKey(t *testing.T) {
	c := New(&fakeStore{}, nil, WithPrefix("oh"))

	base := c.entryKey([]string{"a", "b"}, []string{"0", "0"}, rangeStart, rangeEnd)
	if !strings.HasPrefix(base, "oh:busy:") {
		t.Fatalf("key = %q, want oh:busy: prefix", base)
	}

	ny, _ := time.LoadLocation("America/New_York")
	if same := c.entryKey([]string{"a", "b"}, []string{"0", "0"}, rangeStart.In(ny), rangeEnd); same != base {
		t.Fatalf("key depends on location: %q != %q", same, base)
	}

	variants := map[string]string{
		"generation": c.entryKey([]string{"a", "b"}, []string{"0", "1"}, rangeStart, rangeEnd),
		"calendars":  c.entryKey([]string{"a", "c"}, []string{"0", "0"}, rangeStart, rangeEnd),
		"range":      c.entryKey([]string{"a", "b"}, []string{"0", "0"}, rangeStart, rangeEnd.Add(time.Hour)),
		"joined ids": c.entryKey([]string{"a@0", "b"}, []string{"0", "0"}, rangeStart, rangeEnd),
	}
	for name, k := range variants {
		if k == base {
			t.Fatalf("%s change did not change the key", name)
		}
	}
}

func TestUniqueSorted(t *testing.T) {
	got := uniqueSorted([]string{"team", "primary", "team"})
	if len(got) != 2 || got[0] != "primary" || got[1] != "team" {
		t.Fatalf("uniqueSorted = %v", got)
	}
}

func TestCache_SecondListIsHitAndReplaceInvalidates(t *testing.T) {
	ctx := context.Background()
	rdb := newMemRedis()
	metrics := observability.NewMetrics("test")
	next := &fakeStore{busy: []domain.RawBusyPeriod{{Start: "2026-01-05T10:00:00Z", End: "2026-01-05T11:00:00Z", SourceID: "primary"}}}
	c := New(next, rdb, WithPrefix("oh"), WithTTL(time.Minute), WithLogger(discardLogger()), WithMetrics(metrics))

	first, err := c.ListBusy(ctx, []string{"primary"}, rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("first ListBusy error: %v", err)
	}
	second, err := c.ListBusy(ctx, []string{"primary", "primary"}, rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("second ListBusy error: %v", err)
	}
	if next.listCalls != 1 {
		t.Fatalf("listCalls = %d, want 1", next.listCalls)
	}
	if len(first) != 1 || len(second) != 1 || second[0] != first[0] {
		t.Fatalf("cached %+v, want %+v", second, first)
	}
	oldKey := c.entryKey([]string{"primary"}, []string{"0"}, rangeStart, rangeEnd)
	if rdb.ttls[oldKey] != time.Minute {
		t.Fatalf("ttl = %v, want %v", rdb.ttls[oldKey], time.Minute)
	}

	busy := []domain.BusyPeriod{
		{Interval: domain.Interval{Start: rangeStart.Add(13 * time.Hour), End: rangeStart.Add(14 * time.Hour)}},
		{Interval: domain.Interval{Start: rangeStart.Add(15 * time.Hour), End: rangeStart.Add(16 * time.Hour)}},
	}
	if err := c.ReplaceBusy(ctx, "primary", domain.DateRange{Start: rangeStart, End: rangeEnd}, busy); err != nil {
		t.Fatalf("ReplaceBusy error: %v", err)
	}
	if rdb.data["oh:gen:primary"] != "1" {
		t.Fatalf("generation = %q, want 1", rdb.data["oh:gen:primary"])
	}

	third, err := c.ListBusy(ctx, []string{"primary"}, rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("third ListBusy error: %v", err)
	}
	if next.listCalls != 2 || len(third) != 2 {
		t.Fatalf("after replace got %d periods with %d store calls", len(third), next.listCalls)
	}
	if _, ok := rdb.data[c.entryKey([]string{"primary"}, []string{"1"}, rangeStart, rangeEnd)]; !ok {
		t.Fatalf("expected entry under the new generation")
	}

	want := `
# HELP test_busy_cache_lookups_total Busy period cache lookups by result.
# TYPE test_busy_cache_lookups_total counter
test_busy_cache_lookups_total{result="hit"} 1
test_busy_cache_lookups_total{result="miss"} 2
`
	if err := testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(want), "test_busy_cache_lookups_total"); err != nil {
		t.Fatalf("cache metrics: %v", err)
	}
}

func TestCache_CorruptEntryFallsThrough(t *testing.T) {
	ctx := context.Background()
	rdb := newMemRedis()
	next := &fakeStore{busy: []domain.RawBusyPeriod{{Start: "2026-01-05T10:00:00Z", End: "2026-01-05T11:00:00Z"}}}
	c := New(next, rdb, WithLogger(discardLogger()))

	key := c.entryKey([]string{"primary"}, []string{"0"}, rangeStart, rangeEnd)
	rdb.data[key] = "{not json"

	got, err := c.ListBusy(ctx, []string{"primary"}, rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("ListBusy error: %v", err)
	}
	if len(got) != 1 || next.listCalls != 1 {
		t.Fatalf("got %v after %d store calls", got, next.listCalls)
	}
	if rdb.data[key] == "{not json" {
		t.Fatalf("corrupt entry was not overwritten")
	}
}

func TestCache_NoCalendarsBypassesRedis(t *testing.T) {
	rdb := newMemRedis()
	next := &fakeStore{}
	c := New(next, rdb, WithLogger(discardLogger()))

	if _, err := c.ListBusy(context.Background(), nil, rangeStart, rangeEnd); err != nil {
		t.Fatalf("ListBusy error: %v", err)
	}
	if rdb.gets != 0 || next.listCalls != 1 {
		t.Fatalf("gets = %d, listCalls = %d", rdb.gets, next.listCalls)
	}
}

func TestCache_FailsOpenWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	next := &fakeStore{busy: []domain.RawBusyPeriod{{Start: "2026-01-05T10:00:00Z", End: "2026-01-05T11:00:00Z", SourceID: "primary"}}}
	c := New(next, rdb, WithLogger(discardLogger()))

	got, err := c.ListBusy(context.Background(), []string{"primary"}, rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("ListBusy error: %v", err)
	}
	if len(got) != 1 || next.listCalls != 1 {
		t.Fatalf("got %v after %d store calls", got, next.listCalls)
	}

	busy := []domain.BusyPeriod{{Interval: domain.Interval{Start: rangeStart.Add(9 * time.Hour), End: rangeStart.Add(10 * time.Hour)}}}
	if err := c.ReplaceBusy(context.Background(), "primary", domain.DateRange{Start: rangeStart, End: rangeEnd}, busy); err != nil {
		t.Fatalf("ReplaceBusy error: %v", err)
	}
	if next.replaceCalls != 1 {
		t.Fatalf("replaceCalls = %d, want 1", next.replaceCalls)
	}
}

func TestCacheIntegration_HitsAndInvalidates(t *testing.T) {
	addr := strings.TrimSpace(os.Getenv("OPENHOURS_TEST_REDIS_ADDR"))
	if addr == "" {
		t.Skip("OPENHOURS_TEST_REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Fatalf("redis ping: %v", err)
	}

	prefix := "openhours_test_" + time.Now().UTC().Format("20060102150405.000000000")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		keys, _ := rdb.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			_ = rdb.Del(ctx, keys...).Err()
		}
	})

	next := &fakeStore{busy: []domain.RawBusyPeriod{{Start: "2026-01-05T10:00:00Z", End: "2026-01-05T11:00:00Z", SourceID: "primary"}}}
	c := New(next, rdb, WithPrefix(prefix), WithTTL(time.Minute), WithLogger(discardLogger()))

	for i := 0; i < 3; i++ {
		got, err := c.ListBusy(ctx, []string{"primary"}, rangeStart, rangeEnd)
		if err != nil {
			t.Fatalf("ListBusy error: %v", err)
		}
		if len(got) != 1 || got[0].SourceID != "primary" {
			t.Fatalf("got = %+v", got)
		}
	}
	if next.listCalls != 1 {
		t.Fatalf("listCalls = %d, want 1", next.listCalls)
	}

	busy := []domain.BusyPeriod{
		{Interval: domain.Interval{Start: rangeStart.Add(13 * time.Hour), End: rangeStart.Add(14 * time.Hour)}},
		{Interval: domain.Interval{Start: rangeStart.Add(15 * time.Hour), End: rangeStart.Add(16 * time.Hour)}},
	}
	if err := c.ReplaceBusy(ctx, "primary", domain.DateRange{Start: rangeStart, End: rangeEnd}, busy); err != nil {
		t.Fatalf("ReplaceBusy error: %v", err)
	}

	got, err := c.ListBusy(ctx, []string{"primary"}, rangeStart, rangeEnd)
	if err != nil {
		t.Fatalf("ListBusy error: %v", err)
	}
	if len(got) != 2 || next.listCalls != 2 {
		t.Fatalf("after replace got %d periods with %d store calls", len(got), next.listCalls)
	}
}
