package domain

import (
	"strconv"
	"strings"
	"time"
)

// ParseInstant parses an RFC3339 timestamp, with a Z suffix or an explicit
// offset, into a UTC instant.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// NormalizeBusyPeriods parses every raw entry and fails on the first bad one.
// Nothing is skipped and overlaps are kept as-is.
func NormalizeBusyPeriods(raw []RawBusyPeriod) ([]BusyPeriod, error) {
	out := make([]BusyPeriod, 0, len(raw))
	for i, r := range raw {
		start, err := ParseInstant(r.Start)
		if err != nil {
			return nil, &ParseError{Field: busyField(i, "start"), Value: r.Start, Err: err}
		}
		end, err := ParseInstant(r.End)
		if err != nil {
			return nil, &ParseError{Field: busyField(i, "end"), Value: r.End, Err: err}
		}
		iv, err := NewInterval(start, end)
		if err != nil {
			return nil, NewValidationError(CodeInvalidBusyPeriod, busyField(i, "end")+" must be after start")
		}
		out = append(out, BusyPeriod{Interval: iv, SourceID: r.SourceID})
	}
	return out, nil
}

func busyField(i int, name string) string {
	return "busy_periods[" + strconv.Itoa(i) + "]." + name
}
