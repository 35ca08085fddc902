package store

import (
	"context"
	"errors"
	"time"

	"openhours/backend/internal/domain"
)

// DefaultCalendarID is used when a caller does not name any calendar.
const DefaultCalendarID = "primary"

var (
	ErrNotFound          = errors.New("not found")
	ErrSourceUnavailable = errors.New("calendar source unavailable")
)

// CalendarSource supplies raw busy intervals for a set of calendars. Entries
// are tagged with the calendar they came from and must overlap
// [rangeStart, rangeEnd).
type CalendarSource interface {
	ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error)
}

// CalendarStore is a CalendarSource that can also be fed. ReplaceBusy drops
// every stored block of calendarID that overlaps r and stores busy in its
// place.
type CalendarStore interface {
	CalendarSource
	ReplaceBusy(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error
}

// Pinger is implemented by stores backed by a remote dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}
