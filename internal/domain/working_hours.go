package domain

import (
	"sort"
	"strings"
	"time"
)

const (
	DefaultHourStart = 9
	DefaultHourEnd   = 17
)

// DefaultWorkingDays is Monday through Friday. Days are numbered from
// Monday=0 to Sunday=6.
var DefaultWorkingDays = []int{0, 1, 2, 3, 4}

type WorkingHours struct {
	HourStart int
	HourEnd   int
	Days      []int
	// Timezone is an IANA name. Empty means UTC.
	Timezone string
}

func (wh WorkingHours) Validate() error {
	if wh.HourStart < 0 || wh.HourStart > 23 || wh.HourEnd < 0 || wh.HourEnd > 23 {
		return NewValidationError(CodeInvalidWorkingHours, "working hours must be between 0 and 23")
	}
	if wh.HourStart >= wh.HourEnd {
		return NewValidationError(CodeInvalidWorkingHours, "hour_start must be less than hour_end")
	}
	for _, d := range wh.Days {
		if d < 0 || d > 6 {
			return NewValidationError(CodeInvalidWorkingDays, "working_days must contain values between 0-6 (Monday=0, Sunday=6)")
		}
	}
	return nil
}

func (wh WorkingHours) Location() (*time.Location, error) {
	tz := strings.TrimSpace(wh.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, NewValidationError(CodeInvalidTimezone, "invalid timezone: "+tz)
	}
	return loc, nil
}

// NormalizedDays returns the working days sorted and without duplicates.
func (wh WorkingHours) NormalizedDays() []int {
	seen := make(map[int]struct{}, len(wh.Days))
	out := make([]int, 0, len(wh.Days))
	for _, d := range wh.Days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// GenerateWorkingWindows returns one window per working day touched by r,
// each clamped to r and expressed in UTC. Days are taken in the working-hours
// timezone, so a window whose local day starts before r.Start in UTC terms is
// still considered.
func GenerateWorkingWindows(r DateRange, wh WorkingHours) ([]Interval, error) {
	if err := wh.Validate(); err != nil {
		return nil, err
	}
	loc, err := wh.Location()
	if err != nil {
		return nil, err
	}
	if !r.Start.Before(r.End) {
		return nil, NewValidationError(CodeInvalidDateRange, "range_end must be after range_start")
	}

	working := make(map[int]struct{}, len(wh.Days))
	for _, d := range wh.Days {
		working[d] = struct{}{}
	}

	rangeStart := r.Start.UTC()
	rangeEnd := r.End.UTC()
	firstDay := civilDateUTC(rangeStart.In(loc))
	lastDay := civilDateUTC(rangeEnd.In(loc))

	out := make([]Interval, 0, int(lastDay.Sub(firstDay)/(24*time.Hour))+1)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if _, ok := working[weekdayIndex(day.Weekday())]; !ok {
			continue
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), wh.HourStart, 0, 0, 0, loc).UTC()
		end := time.Date(day.Year(), day.Month(), day.Day(), wh.HourEnd, 0, 0, 0, loc).UTC()

		if start.Before(rangeStart) {
			start = rangeStart
		}
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		if !start.Before(end) {
			continue
		}
		out = append(out, Interval{Start: start, End: end})
	}

	return out, nil
}

// civilDateUTC keeps the calendar date of t and drops its clock and zone, so
// days can be stepped with AddDate without DST drift.
func civilDateUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func weekdayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}
