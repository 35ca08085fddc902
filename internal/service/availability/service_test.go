package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/store"
	"openhours/backend/internal/store/memory"
)

type fakeStore struct {
	listFn    func(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error)
	replaceFn func(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error
}

func (f *fakeStore) ListBusy(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
	if f.listFn == nil {
		panic("ListBusy not configured")
	}
	return f.listFn(ctx, calendarIDs, rangeStart, rangeEnd)
}

func (f *fakeStore) ReplaceBusy(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error {
	if f.replaceFn == nil {
		panic("ReplaceBusy not configured")
	}
	return f.replaceFn(ctx, calendarID, r, busy)
}

func intPtr(v int) *int { return &v }

// oneDay is Monday 2026-01-05 in UTC.
var oneDay = Window{RangeStart: "2026-01-05T00:00:00Z", RangeEnd: "2026-01-06T00:00:00Z"}

func hm(hour, minute int) time.Time {
	return time.Date(2026, 1, 5, hour, minute, 0, 0, time.UTC)
}

func raw(source string, start, end string) domain.RawBusyPeriod {
	return domain.RawBusyPeriod{Start: start, End: end, SourceID: source}
}

type slot struct {
	start, end time.Time
	minutes    int
}

func assertSlots(t *testing.T, got []domain.FreeSlot, want []slot) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(free_slots) = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if !got[i].Start.Equal(w.start) || !got[i].End.Equal(w.end) || got[i].DurationMinutes != w.minutes {
			t.Fatalf("free_slots[%d] = %s - %s (%d min), want %s - %s (%d min)",
				i,
				got[i].Start.Format(time.RFC3339), got[i].End.Format(time.RFC3339), got[i].DurationMinutes,
				w.start.Format(time.RFC3339), w.end.Format(time.RFC3339), w.minutes,
			)
		}
	}
}

func TestServiceCompute_SingleDayWindow(t *testing.T) {
	tests := []struct {
		name string
		busy []domain.RawBusyPeriod
		want []slot
	}{
		{
			name: "no busy periods",
			want: []slot{{hm(9, 0), hm(17, 0), 480}},
		},
		{
			name: "busy covers the window",
			busy: []domain.RawBusyPeriod{raw("primary", "2026-01-05T09:00:00Z", "2026-01-05T17:00:00Z")},
			want: nil,
		},
		{
			name: "busy starts before the window",
			busy: []domain.RawBusyPeriod{raw("primary", "2026-01-05T08:00:00Z", "2026-01-05T10:00:00Z")},
			want: []slot{{hm(10, 0), hm(17, 0), 420}},
		},
		{
			name: "two busy periods",
			busy: []domain.RawBusyPeriod{
				raw("primary", "2026-01-05T10:00:00Z", "2026-01-05T11:00:00Z"),
				raw("primary", "2026-01-05T14:00:00Z", "2026-01-05T15:00:00Z"),
			},
			want: []slot{
				{hm(9, 0), hm(10, 0), 60},
				{hm(11, 0), hm(14, 0), 180},
				{hm(15, 0), hm(17, 0), 120},
			},
		},
		{
			name: "overlapping sources",
			busy: []domain.RawBusyPeriod{
				raw("work", "2026-01-05T10:00:00Z", "2026-01-05T12:00:00Z"),
				raw("personal", "2026-01-05T11:00:00Z", "2026-01-05T13:00:00Z"),
			},
			want: []slot{
				{hm(9, 0), hm(10, 0), 60},
				{hm(13, 0), hm(17, 0), 240},
			},
		},
	}

	svc := NewService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Compute(context.Background(), ComputeInput{Window: oneDay, BusyPeriods: tt.busy})
			if err != nil {
				t.Fatalf("Compute error: %v", err)
			}
			assertSlots(t, res.FreeSlots, tt.want)
			if len(res.BusyPeriods) != len(tt.busy) {
				t.Fatalf("len(busy_periods) = %d, want %d", len(res.BusyPeriods), len(tt.busy))
			}
			for i := range tt.busy {
				if res.BusyPeriods[i].SourceID != tt.busy[i].SourceID {
					t.Fatalf("busy_periods[%d].source_id = %q, want %q", i, res.BusyPeriods[i].SourceID, tt.busy[i].SourceID)
				}
			}
		})
	}
}

func TestServiceCompute_SkipsWeekend(t *testing.T) {
	svc := NewService(nil)
	busy := []domain.RawBusyPeriod{raw("primary", "2026-01-10T10:00:00Z", "2026-01-10T11:00:00Z")}

	// Friday 2026-01-09 through Monday 2026-01-12.
	res, err := svc.Compute(context.Background(), ComputeInput{
		Window: Window{
			RangeStart:  "2026-01-09T00:00:00Z",
			RangeEnd:    "2026-01-13T00:00:00Z",
			WorkingDays: []int{0, 1, 2, 3, 4},
		},
		BusyPeriods: busy,
	})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	for _, s := range res.FreeSlots {
		if wd := s.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("weekend slot %v", s)
		}
	}
	if len(res.FreeSlots) != 2 {
		t.Fatalf("len(free_slots) = %d, want 2", len(res.FreeSlots))
	}
}

func TestServiceCompute_Defaults(t *testing.T) {
	clock := func() time.Time { return time.Date(2026, 1, 7, 15, 4, 5, 0, time.FixedZone("x", 3*3600)) }
	svc := NewService(nil, WithClock(clock))

	res, err := svc.Compute(context.Background(), ComputeInput{})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	wantStart := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	if !res.DateRange.Start.Equal(wantStart) {
		t.Fatalf("range start = %v, want %v", res.DateRange.Start, wantStart)
	}
	if !res.DateRange.End.Equal(wantStart.Add(7 * 24 * time.Hour)) {
		t.Fatalf("range end = %v, want start + 7 days", res.DateRange.End)
	}
	if res.WorkingHours.HourStart != 9 || res.WorkingHours.HourEnd != 17 || res.WorkingHours.Timezone != "UTC" {
		t.Fatalf("working hours = %+v", res.WorkingHours)
	}
	if len(res.WorkingHours.Days) != 5 {
		t.Fatalf("days = %v, want Monday to Friday", res.WorkingHours.Days)
	}
	// Wed 7 to Wed 14 covers Wed-Fri and Mon-Tue.
	if len(res.FreeSlots) != 5 {
		t.Fatalf("len(free_slots) = %d, want 5", len(res.FreeSlots))
	}
	if res.BusyPeriods == nil {
		t.Fatalf("busy_periods must be empty, not nil")
	}
}

func TestServiceCompute_EchoesNormalizedInput(t *testing.T) {
	svc := NewService(nil)
	res, err := svc.Compute(context.Background(), ComputeInput{
		Window: Window{
			RangeStart:  "2026-01-05T00:00:00Z",
			RangeEnd:    "2026-01-06T00:00:00Z",
			HourStart:   intPtr(8),
			HourEnd:     intPtr(12),
			WorkingDays: []int{4, 0, 0},
			Timezone:    "America/New_York",
		},
		BusyPeriods: []domain.RawBusyPeriod{raw("primary", "2026-01-05T09:00:00-05:00", "2026-01-05T10:00:00-05:00")},
	})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	days := res.WorkingHours.Days
	if len(days) != 2 || days[0] != 0 || days[1] != 4 {
		t.Fatalf("days = %v, want [0 4]", days)
	}
	if res.WorkingHours.Timezone != "America/New_York" {
		t.Fatalf("timezone = %q", res.WorkingHours.Timezone)
	}
	if !res.BusyPeriods[0].Start.Equal(hm(14, 0)) {
		t.Fatalf("busy start = %v, want 14:00 UTC", res.BusyPeriods[0].Start)
	}
	assertSlots(t, res.FreeSlots, []slot{
		{hm(13, 0), hm(14, 0), 60},
		{hm(15, 0), hm(17, 0), 120},
	})
}

func TestServiceCompute_EmptyWorkingDays(t *testing.T) {
	svc := NewService(nil)
	res, err := svc.Compute(context.Background(), ComputeInput{Window: Window{
		RangeStart:  oneDay.RangeStart,
		RangeEnd:    oneDay.RangeEnd,
		WorkingDays: []int{},
	}})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if len(res.FreeSlots) != 0 {
		t.Fatalf("free_slots = %v, want none", res.FreeSlots)
	}
	if res.WorkingHours.Days == nil || len(res.WorkingHours.Days) != 0 {
		t.Fatalf("days = %#v, want empty", res.WorkingHours.Days)
	}
}

func TestServiceCompute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       ComputeInput
		wantCode domain.ErrorCode
	}{
		{
			name:     "inverted range",
			in:       ComputeInput{Window: Window{RangeStart: "2026-01-06T00:00:00Z", RangeEnd: "2026-01-05T00:00:00Z"}},
			wantCode: domain.CodeInvalidDateRange,
		},
		{
			name:     "range too long",
			in:       ComputeInput{Window: Window{RangeStart: "2026-01-01T00:00:00Z", RangeEnd: "2027-06-01T00:00:00Z"}},
			wantCode: domain.CodeRangeTooLong,
		},
		{
			name:     "malformed range start",
			in:       ComputeInput{Window: Window{RangeStart: "monday"}},
			wantCode: domain.CodeParseError,
		},
		{
			name:     "bad hours",
			in:       ComputeInput{Window: Window{RangeStart: oneDay.RangeStart, HourStart: intPtr(17), HourEnd: intPtr(9)}},
			wantCode: domain.CodeInvalidWorkingHours,
		},
		{
			name:     "bad day",
			in:       ComputeInput{Window: Window{RangeStart: oneDay.RangeStart, WorkingDays: []int{7}}},
			wantCode: domain.CodeInvalidWorkingDays,
		},
		{
			name:     "bad timezone",
			in:       ComputeInput{Window: Window{RangeStart: oneDay.RangeStart, Timezone: "Mars/Olympus"}},
			wantCode: domain.CodeInvalidTimezone,
		},
		{
			name: "bad busy period",
			in: ComputeInput{
				Window:      oneDay,
				BusyPeriods: []domain.RawBusyPeriod{raw("primary", "2026-01-05T10:00:00Z", "later")},
			},
			wantCode: domain.CodeParseError,
		},
	}

	svc := NewService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Compute(context.Background(), tt.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if domain.CodeOf(err) != tt.wantCode {
				t.Fatalf("code = %s, want %s (err %v)", domain.CodeOf(err), tt.wantCode, err)
			}
		})
	}
}

func TestServiceCompute_RangeParseErrorNamesField(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Compute(context.Background(), ComputeInput{Window: Window{RangeStart: oneDay.RangeStart, RangeEnd: "2026-01-06"}})
	var pErr *domain.ParseError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *domain.ParseError", err)
	}
	if pErr.Field != "range_end" {
		t.Fatalf("field = %q, want range_end", pErr.Field)
	}
}

func TestServiceCompute_MaxRangeOption(t *testing.T) {
	svc := NewService(nil, WithMaxRange(48*time.Hour))
	_, err := svc.Compute(context.Background(), ComputeInput{Window: Window{RangeStart: oneDay.RangeStart, RangeEnd: "2026-01-08T00:00:00Z"}})
	if domain.CodeOf(err) != domain.CodeRangeTooLong {
		t.Fatalf("err = %v, want %s", err, domain.CodeRangeTooLong)
	}
	if err.Error() != "date range must not exceed 2 days" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestServiceCheck_FetchesBusyForDefaultCalendar(t *testing.T) {
	var gotIDs []string
	var gotStart, gotEnd time.Time
	svc := NewService(&fakeStore{
		listFn: func(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
			gotIDs, gotStart, gotEnd = calendarIDs, rangeStart, rangeEnd
			return []domain.RawBusyPeriod{raw("team", "2026-01-05T12:00:00Z", "2026-01-05T13:00:00Z")}, nil
		},
	}, WithDefaultCalendar("team"))

	res, err := svc.Check(context.Background(), CheckInput{Window: oneDay, CalendarIDs: []string{" ", ""}})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if len(gotIDs) != 1 || gotIDs[0] != "team" {
		t.Fatalf("calendar ids = %v, want [team]", gotIDs)
	}
	if !gotStart.Equal(hm(0, 0)) || !gotEnd.Equal(hm(0, 0).Add(24*time.Hour)) {
		t.Fatalf("range = %v - %v", gotStart, gotEnd)
	}
	assertSlots(t, res.FreeSlots, []slot{
		{hm(9, 0), hm(12, 0), 180},
		{hm(13, 0), hm(17, 0), 240},
	})
	if res.BusyPeriods[0].SourceID != "team" {
		t.Fatalf("source = %q, want team", res.BusyPeriods[0].SourceID)
	}
}

func TestServiceCheck_SourceErrors(t *testing.T) {
	boom := errors.New("db down")

	svc := NewService(&fakeStore{
		listFn: func(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
			return nil, boom
		},
	})
	_, err := svc.Check(context.Background(), CheckInput{Window: oneDay})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if domain.IsClientError(err) {
		t.Fatalf("source failure reported as client error")
	}

	svc = NewService(&fakeStore{
		listFn: func(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
			return nil, store.ErrSourceUnavailable
		},
	})
	_, err = svc.Check(context.Background(), CheckInput{Window: oneDay})
	if !errors.Is(err, store.ErrSourceUnavailable) {
		t.Fatalf("err = %v, want %v", err, store.ErrSourceUnavailable)
	}

	_, err = NewService(nil).Check(context.Background(), CheckInput{Window: oneDay})
	if !errors.Is(err, store.ErrSourceUnavailable) {
		t.Fatalf("nil store err = %v, want %v", err, store.ErrSourceUnavailable)
	}
}

func TestServiceCheck_MalformedSourceData(t *testing.T) {
	svc := NewService(&fakeStore{
		listFn: func(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]domain.RawBusyPeriod, error) {
			return []domain.RawBusyPeriod{raw("primary", "garbage", "2026-01-05T13:00:00Z")}, nil
		},
	})
	_, err := svc.Check(context.Background(), CheckInput{Window: oneDay})
	if domain.CodeOf(err) != domain.CodeParseError {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestServiceReplaceBusy_Validation(t *testing.T) {
	svc := NewService(&fakeStore{
		replaceFn: func(ctx context.Context, calendarID string, r domain.DateRange, busy []domain.BusyPeriod) error {
			t.Fatalf("store must not be called")
			return nil
		},
	})

	tests := []struct {
		name     string
		in       ReplaceBusyInput
		wantCode domain.ErrorCode
	}{
		{
			name:     "missing calendar",
			in:       ReplaceBusyInput{RangeStart: oneDay.RangeStart, RangeEnd: oneDay.RangeEnd},
			wantCode: domain.CodeInvalidRequest,
		},
		{
			name:     "missing range",
			in:       ReplaceBusyInput{CalendarID: "primary", RangeStart: oneDay.RangeStart},
			wantCode: domain.CodeInvalidRequest,
		},
		{
			name: "busy outside range",
			in: ReplaceBusyInput{
				CalendarID:  "primary",
				RangeStart:  oneDay.RangeStart,
				RangeEnd:    oneDay.RangeEnd,
				BusyPeriods: []domain.RawBusyPeriod{raw("", "2026-01-06T10:00:00Z", "2026-01-06T11:00:00Z")},
			},
			wantCode: domain.CodeInvalidBusyPeriod,
		},
		{
			name: "inverted busy",
			in: ReplaceBusyInput{
				CalendarID:  "primary",
				RangeStart:  oneDay.RangeStart,
				RangeEnd:    oneDay.RangeEnd,
				BusyPeriods: []domain.RawBusyPeriod{raw("", "2026-01-05T11:00:00Z", "2026-01-05T10:00:00Z")},
			},
			wantCode: domain.CodeInvalidBusyPeriod,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ReplaceBusy(context.Background(), tt.in)
			if domain.CodeOf(err) != tt.wantCode {
				t.Fatalf("err = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestServiceReplaceBusy_ThenCheck(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	n, err := svc.ReplaceBusy(ctx, ReplaceBusyInput{
		CalendarID: "primary",
		RangeStart: oneDay.RangeStart,
		RangeEnd:   oneDay.RangeEnd,
		BusyPeriods: []domain.RawBusyPeriod{
			raw("ignored", "2026-01-05T10:00:00Z", "2026-01-05T11:00:00Z"),
			raw("", "2026-01-05T14:00:00+00:00", "2026-01-05T15:00:00Z"),
		},
	})
	if err != nil {
		t.Fatalf("ReplaceBusy error: %v", err)
	}
	if n != 2 {
		t.Fatalf("stored = %d, want 2", n)
	}

	res, err := svc.Check(ctx, CheckInput{Window: oneDay})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	assertSlots(t, res.FreeSlots, []slot{
		{hm(9, 0), hm(10, 0), 60},
		{hm(11, 0), hm(14, 0), 180},
		{hm(15, 0), hm(17, 0), 120},
	})
	for _, b := range res.BusyPeriods {
		if b.SourceID != "primary" {
			t.Fatalf("source = %q, want primary", b.SourceID)
		}
	}

	if err := svc.Ready(ctx); err != nil {
		t.Fatalf("Ready error: %v", err)
	}
}
