package domain

import (
	"errors"
	"time"
)

var errEmptyInterval = errors.New("interval end must be after start")

// Interval is a half-open span of UTC instants with Start strictly before End.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	start = start.UTC()
	end = end.UTC()
	if !start.Before(end) {
		return Interval{}, errEmptyInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps uses strict inequalities, so intervals that only touch do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return o.Start.Before(i.End) && o.End.After(i.Start)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

type BusyPeriod struct {
	Interval
	SourceID string
}

// RawBusyPeriod is a busy entry as received from a calendar source, before
// its timestamps are parsed.
type RawBusyPeriod struct {
	Start    string
	End      string
	SourceID string
}

type FreeSlot struct {
	Interval
	DurationMinutes int
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = start.UTC()
	end = end.UTC()
	if !start.Before(end) {
		return DateRange{}, NewValidationError(CodeInvalidDateRange, "range_end must be after range_start")
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) Span() time.Duration {
	return r.End.Sub(r.Start)
}

type AvailabilityResult struct {
	FreeSlots    []FreeSlot
	BusyPeriods  []BusyPeriod
	WorkingHours WorkingHours
	DateRange    DateRange
}
