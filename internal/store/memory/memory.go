// Package memory keeps busy blocks in process memory. It backs the server
// when no database is configured and doubles as a test source.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"openhours/backend/internal/domain"
)

type block struct {
	calendarID string
	start      time.Time
	end        time.Time
}

type Store struct {
	mu     sync.RWMutex
	blocks map[string][]block
}

func New() *Store {
	return &Store{blocks: make(map[string][]block)}
}

func (s *Store) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	var hits []block
	seen := make(map[string]struct{}, len(calendarIDs))
	for _, id := range calendarIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		for _, b := range s.blocks[id] {
			if b.start.Before(rangeEnd) && rangeStart.Before(b.end) {
				hits = append(hits, b)
			}
		}
	}
	s.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if !hits[i].start.Equal(hits[j].start) {
			return hits[i].start.Before(hits[j].start)
		}
		if !hits[i].end.Equal(hits[j].end) {
			return hits[i].end.Before(hits[j].end)
		}
		return hits[i].calendarID < hits[j].calendarID
	})

	out := make([]domain.RawBusyPeriod, 0, len(hits))
	for _, b := range hits {
		out = append(out, domain.RawBusyPeriod{
			Start:    b.start.Format(time.RFC3339Nano),
			End:      b.end.Format(time.RFC3339Nano),
			SourceID: b.calendarID,
		})
	}
	return out, nil
}

// ReplaceBusy drops every block of calendarID that overlaps r and stores busy.
func (s *Store) ReplaceBusy(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, b := range busy {
		if !b.Start.Before(b.End) {
			return domain.NewValidationError(domain.CodeInvalidBusyPeriod, "busy period end must be after start")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.blocks[calendarID][:0:0]
	for _, b := range s.blocks[calendarID] {
		if b.start.Before(r.End) && r.Start.Before(b.end) {
			continue
		}
		kept = append(kept, b)
	}
	for _, b := range busy {
		kept = append(kept, block{calendarID: calendarID, start: b.Start.UTC(), end: b.End.UTC()})
	}
	if len(kept) == 0 {
		delete(s.blocks, calendarID)
		return nil
	}
	s.blocks[calendarID] = kept
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
