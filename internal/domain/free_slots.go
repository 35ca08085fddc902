package domain

import (
	"sort"
	"time"
)

// ComputeFreeSlots subtracts busy from window. Busy periods are walked in
// (start, end) order behind a single cursor that only moves forward, which
// coalesces overlapping periods from different sources without a merge pass.
func ComputeFreeSlots(window Interval, busy []BusyPeriod) []Interval {
	overlapping := make([]Interval, 0, len(busy))
	for _, b := range busy {
		if window.Overlaps(b.Interval) {
			overlapping = append(overlapping, b.Interval)
		}
	}

	sort.Slice(overlapping, func(i, j int) bool {
		if !overlapping[i].Start.Equal(overlapping[j].Start) {
			return overlapping[i].Start.Before(overlapping[j].Start)
		}
		return overlapping[i].End.Before(overlapping[j].End)
	})

	var out []Interval
	cursor := window.Start
	for _, b := range overlapping {
		if cursor.Before(b.Start) {
			end := minTime(b.Start, window.End)
			if cursor.Before(end) {
				out = append(out, Interval{Start: cursor, End: end})
			}
		}
		cursor = maxTime(cursor, b.End)
	}
	if cursor.Before(window.End) {
		out = append(out, Interval{Start: cursor, End: window.End})
	}

	return out
}

// FreeSlotsForWindows runs ComputeFreeSlots over chronologically ordered
// windows and concatenates the results.
func FreeSlotsForWindows(windows []Interval, busy []BusyPeriod) ([]Interval, error) {
	out := make([]Interval, 0, len(windows))
	for _, w := range windows {
		out = append(out, ComputeFreeSlots(w, busy)...)
	}

	for i, s := range out {
		if !s.Start.Before(s.End) {
			return nil, internalError("free slot %d is empty: %s - %s", i, s.Start.Format(time.RFC3339Nano), s.End.Format(time.RFC3339Nano))
		}
		if i > 0 && out[i-1].End.After(s.Start) {
			return nil, internalError("free slots %d and %d overlap", i-1, i)
		}
	}

	return out, nil
}

// AnnotateDurations attaches whole minutes, rounded down, to each slot.
func AnnotateDurations(slots []Interval) ([]FreeSlot, error) {
	out := make([]FreeSlot, 0, len(slots))
	for i, s := range slots {
		if !s.Start.Before(s.End) {
			return nil, internalError("cannot annotate empty slot %d", i)
		}
		out = append(out, FreeSlot{
			Interval:        s,
			DurationMinutes: int(s.Duration() / time.Minute),
		})
	}
	return out, nil
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
