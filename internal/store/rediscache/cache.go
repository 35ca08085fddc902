// Package rediscache puts a Redis read-through cache in front of a
// store.CalendarStore.
//
// Every calendar has a generation counter. Cache keys embed the generations
// of all requested calendars, so bumping a counter on write makes every
// older entry unreachable without scanning for it.
package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/observability"
	"openhours/backend/internal/store"
)

const defaultTTL = 5 * time.Minute

type Cache struct {
	next    store.CalendarStore
	rdb     redis.Cmdable
	ttl     time.Duration
	prefix  string
	logger  *slog.Logger
	metrics *observability.Metrics
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		if p := strings.TrimSpace(prefix); p != "" {
			c.prefix = p
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *observability.Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

func New(next store.CalendarStore, rdb redis.Cmdable, opts ...Option) *Cache {
	c := &Cache{
		next:   next,
		rdb:    rdb,
		ttl:    defaultTTL,
		prefix: "openhours",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListBusy serves from Redis when possible. Redis failures are logged and the
// call falls through to the wrapped store.
func (c *Cache) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	ids := uniqueSorted(calendarIDs)
	if len(ids) == 0 {
		return c.next.ListBusy(ctx, calendarIDs, rangeStart, rangeEnd)
	}

	gens, err := c.generations(ctx, ids)
	if err != nil {
		c.logger.Warn("busy cache unavailable", "op", "generations", "err", err)
		return c.next.ListBusy(ctx, calendarIDs, rangeStart, rangeEnd)
	}
	key := c.entryKey(ids, gens, rangeStart, rangeEnd)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []domain.RawBusyPeriod
		jsonErr := json.Unmarshal(raw, &cached)
		if jsonErr == nil {
			c.metrics.CacheLookup(true)
			return cached, nil
		}
		c.logger.Warn("busy cache entry corrupt", "key", key, "err", jsonErr)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("busy cache unavailable", "op", "get", "err", err)
	}
	c.metrics.CacheLookup(false)

	busy, err := c.next.ListBusy(ctx, calendarIDs, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(busy)
	if err != nil {
		return busy, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("busy cache unavailable", "op", "set", "err", err)
	}
	return busy, nil
}

// ReplaceBusy writes through and then bumps the calendar generation.
func (c *Cache) ReplaceBusy(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error {
	if err := c.next.ReplaceBusy(ctx, calendarID, r, busy); err != nil {
		return err
	}
	if err := c.rdb.Incr(ctx, c.generationKey(calendarID)).Err(); err != nil {
		// Entries for this calendar stay readable until their TTL runs out.
		c.logger.Warn("busy cache invalidation failed", "calendar_id", calendarID, "err", err)
	}
	return nil
}

// Ping reports the wrapped store's health. Redis is optional and does not
// affect readiness.
func (c *Cache) Ping(ctx context.Context) error {
	if p, ok := c.next.(store.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (c *Cache) generations(ctx context.Context, ids []string) ([]string, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.generationKey(id)
	}
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	gens := make([]string, len(vals))
	for i, v := range vals {
		switch g := v.(type) {
		case string:
			gens[i] = g
		default:
			gens[i] = "0"
		}
	}
	return gens, nil
}

func (c *Cache) generationKey(calendarID string) string {
	return c.prefix + ":gen:" + calendarID
}

func (c *Cache) entryKey(ids, gens []string, rangeStart, rangeEnd time.Time) string {
	h := sha256.New()
	for i, id := range ids {
		h.Write([]byte(strconv.Quote(id)))
		h.Write([]byte{'@'})
		h.Write([]byte(gens[i]))
		h.Write([]byte{0})
	}
	h.Write([]byte(rangeStart.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte{0})
	h.Write([]byte(rangeEnd.UTC().Format(time.RFC3339Nano)))
	return c.prefix + ":busy:" + hex.EncodeToString(h.Sum(nil))
}

func uniqueSorted(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
