package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/observability"
	"openhours/backend/internal/store"
)

const (
	DefaultMaxRange  = 366 * 24 * time.Hour
	defaultRangeSpan = 7 * 24 * time.Hour
	defaultTimezone  = "UTC"
	tracerName       = "openhours/backend/internal/service/availability"
)

const (
	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

type Service struct {
	store           store.CalendarStore
	now             func() time.Time
	maxRange        time.Duration
	defaultCalendar string
	metrics         *observability.Metrics
	tracer          trace.Tracer
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithMaxRange(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.maxRange = d
		}
	}
}

func WithDefaultCalendar(calendarID string) Option {
	return func(s *Service) {
		if id := strings.TrimSpace(calendarID); id != "" {
			s.defaultCalendar = id
		}
	}
}

func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService builds the orchestrator. st may be nil, in which case only
// Compute is usable and the calendar-backed operations report
// store.ErrSourceUnavailable.
func NewService(st store.CalendarStore, opts ...Option) *Service {
	s := &Service{
		store:           st,
		now:             time.Now,
		maxRange:        DefaultMaxRange,
		defaultCalendar: store.DefaultCalendarID,
		tracer:          otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Window holds the optional parameters shared by every availability query.
// Nil pointers and empty strings select the defaults. A nil WorkingDays
// selects Monday to Friday; a non-nil empty slice selects no days at all.
type Window struct {
	RangeStart  string
	RangeEnd    string
	HourStart   *int
	HourEnd     *int
	WorkingDays []int
	Timezone    string
}

type ComputeInput struct {
	Window
	BusyPeriods []domain.RawBusyPeriod
}

type CheckInput struct {
	Window
	CalendarIDs []string
}

type ReplaceBusyInput struct {
	CalendarID  string
	RangeStart  string
	RangeEnd    string
	BusyPeriods []domain.RawBusyPeriod
}

// Compute turns caller-supplied busy periods into free slots.
func (s *Service) Compute(ctx context.Context, in ComputeInput) (res domain.AvailabilityResult, err error) {
	_, span := s.tracer.Start(ctx, "availability.Compute")
	defer s.finish(span, "compute", time.Now(), &err)
	span.SetAttributes(attribute.Int("availability.busy_input", len(in.BusyPeriods)))

	r, err := s.resolveRange(in.RangeStart, in.RangeEnd)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	res, err = s.compute(r, in.Window, in.BusyPeriods)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	span.SetAttributes(attribute.Int("availability.free_slots", len(res.FreeSlots)))
	return res, nil
}

// Check computes availability for stored calendars. Busy periods are fetched
// from the calendar store for the effective range and tagged with the
// calendar they belong to.
func (s *Service) Check(ctx context.Context, in CheckInput) (res domain.AvailabilityResult, err error) {
	ctx, span := s.tracer.Start(ctx, "availability.Check")
	defer s.finish(span, "check", time.Now(), &err)

	ids := s.calendarIDs(in.CalendarIDs)
	span.SetAttributes(attribute.StringSlice("availability.calendar_ids", ids))

	r, err := s.resolveRange(in.RangeStart, in.RangeEnd)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	if s.store == nil {
		return domain.AvailabilityResult{}, store.ErrSourceUnavailable
	}

	raw, err := s.store.ListBusy(ctx, ids, r.Start, r.End)
	if err != nil {
		if errors.Is(err, store.ErrSourceUnavailable) {
			return domain.AvailabilityResult{}, err
		}
		return domain.AvailabilityResult{}, fmt.Errorf("list busy: %w", err)
	}

	res, err = s.compute(r, in.Window, raw)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	span.SetAttributes(attribute.Int("availability.free_slots", len(res.FreeSlots)))
	return res, nil
}

// ReplaceBusy stores the busy periods of one calendar for a range, replacing
// every stored period that overlaps it. It returns the number stored.
func (s *Service) ReplaceBusy(ctx context.Context, in ReplaceBusyInput) (n int, err error) {
	ctx, span := s.tracer.Start(ctx, "availability.ReplaceBusy")
	defer s.finish(span, "replace_busy", time.Now(), &err)

	calendarID := strings.TrimSpace(in.CalendarID)
	if calendarID == "" {
		return 0, domain.NewValidationError(domain.CodeInvalidRequest, "calendar_id is required")
	}
	span.SetAttributes(attribute.String("availability.calendar_id", calendarID))
	if strings.TrimSpace(in.RangeStart) == "" || strings.TrimSpace(in.RangeEnd) == "" {
		return 0, domain.NewValidationError(domain.CodeInvalidRequest, "range_start and range_end are required")
	}

	r, err := s.resolveRange(in.RangeStart, in.RangeEnd)
	if err != nil {
		return 0, err
	}
	busy, err := domain.NormalizeBusyPeriods(in.BusyPeriods)
	if err != nil {
		return 0, err
	}
	rangeIv := domain.Interval{Start: r.Start, End: r.End}
	for i := range busy {
		if !rangeIv.Overlaps(busy[i].Interval) {
			return 0, domain.NewValidationError(domain.CodeInvalidBusyPeriod,
				fmt.Sprintf("busy_periods[%d] must overlap the range", i))
		}
		busy[i].SourceID = calendarID
	}

	if s.store == nil {
		return 0, store.ErrSourceUnavailable
	}
	if err := s.store.ReplaceBusy(ctx, calendarID, r, busy); err != nil {
		if domain.IsClientError(err) || errors.Is(err, store.ErrSourceUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("replace busy: %w", err)
	}
	return len(busy), nil
}

// Ready reports whether the calendar store can serve requests.
func (s *Service) Ready(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if p, ok := s.store.(store.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *Service) compute(r domain.DateRange, w Window, raw []domain.RawBusyPeriod) (domain.AvailabilityResult, error) {
	wh := workingHours(w)

	windows, err := domain.GenerateWorkingWindows(r, wh)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	busy, err := domain.NormalizeBusyPeriods(raw)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	slots, err := domain.FreeSlotsForWindows(windows, busy)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	free, err := domain.AnnotateDurations(slots)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	s.metrics.ObserveResult(len(windows), len(free))

	wh.Days = wh.NormalizedDays()
	return domain.AvailabilityResult{
		FreeSlots:    free,
		BusyPeriods:  busy,
		WorkingHours: wh,
		DateRange:    r,
	}, nil
}

func (s *Service) resolveRange(rawStart, rawEnd string) (domain.DateRange, error) {
	var start, end time.Time
	if strings.TrimSpace(rawStart) == "" {
		now := s.now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		t, err := domain.ParseInstant(rawStart)
		if err != nil {
			return domain.DateRange{}, &domain.ParseError{Field: "range_start", Value: rawStart, Err: err}
		}
		start = t
	}
	if strings.TrimSpace(rawEnd) == "" {
		end = start.Add(defaultRangeSpan)
	} else {
		t, err := domain.ParseInstant(rawEnd)
		if err != nil {
			return domain.DateRange{}, &domain.ParseError{Field: "range_end", Value: rawEnd, Err: err}
		}
		end = t
	}

	r, err := domain.NewDateRange(start, end)
	if err != nil {
		return domain.DateRange{}, err
	}
	if r.Span() > s.maxRange {
		return domain.DateRange{}, domain.NewValidationError(domain.CodeRangeTooLong,
			fmt.Sprintf("date range must not exceed %d days", int(s.maxRange/(24*time.Hour))))
	}
	return r, nil
}

func (s *Service) calendarIDs(in []string) []string {
	ids := make([]string, 0, len(in))
	for _, id := range in {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = append(ids, s.defaultCalendar)
	}
	return ids
}

func (s *Service) finish(span trace.Span, operation string, started time.Time, errp *error) {
	outcome := outcomeOK
	if err := *errp; err != nil {
		switch {
		case domain.IsClientError(err):
			outcome = outcomeInvalid
		case errors.Is(err, store.ErrSourceUnavailable):
			outcome = outcomeUnavailable
		default:
			outcome = outcomeError
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("availability.outcome", outcome))
	span.End()
	s.metrics.ObserveRequest(operation, outcome, time.Since(started))
}

func workingHours(w Window) domain.WorkingHours {
	wh := domain.WorkingHours{
		HourStart: domain.DefaultHourStart,
		HourEnd:   domain.DefaultHourEnd,
		Timezone:  strings.TrimSpace(w.Timezone),
	}
	if w.HourStart != nil {
		wh.HourStart = *w.HourStart
	}
	if w.HourEnd != nil {
		wh.HourEnd = *w.HourEnd
	}
	if w.WorkingDays == nil {
		wh.Days = append([]int(nil), domain.DefaultWorkingDays...)
	} else {
		wh.Days = append([]int{}, w.WorkingDays...)
	}
	if wh.Timezone == "" {
		wh.Timezone = defaultTimezone
	}
	return wh
}
