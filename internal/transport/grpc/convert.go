package grpc

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"openhours/backend/internal/domain"
	openhoursv1 "openhours/backend/internal/gen/proto/openhours/v1"
	"openhours/backend/internal/service/availability"
)

const (
	maxBusyPeriods    = 10000
	maxCalendarIDs    = 50
	maxIDLength       = 256
	maxTimezoneLength = 64
)

func invalidRequest(format string, args ...any) error {
	return domain.NewValidationError(domain.CodeInvalidRequest, fmt.Sprintf(format, args...))
}

func computeInput(req *openhoursv1.GetAvailabilityRequest) (availability.ComputeInput, error) {
	if req == nil {
		return availability.ComputeInput{}, invalidRequest("request is required")
	}
	w, err := toWindow(req.GetWindow())
	if err != nil {
		return availability.ComputeInput{}, err
	}
	busy, err := toRawBusy(req.GetBusyPeriods())
	if err != nil {
		return availability.ComputeInput{}, err
	}
	return availability.ComputeInput{Window: w, BusyPeriods: busy}, nil
}

func checkInput(req *openhoursv1.CheckAvailabilityRequest) (availability.CheckInput, error) {
	if req == nil {
		return availability.CheckInput{}, invalidRequest("request is required")
	}
	w, err := toWindow(req.GetWindow())
	if err != nil {
		return availability.CheckInput{}, err
	}
	ids := req.GetCalendarIds()
	if len(ids) > maxCalendarIDs {
		return availability.CheckInput{}, invalidRequest("calendar_ids must contain at most %d entries", maxCalendarIDs)
	}
	for i, id := range ids {
		if len(id) > maxIDLength {
			return availability.CheckInput{}, invalidRequest("calendar_ids[%d] must be at most %d characters", i, maxIDLength)
		}
	}
	return availability.CheckInput{Window: w, CalendarIDs: ids}, nil
}

func replaceBusyInput(req *openhoursv1.ReplaceBusyPeriodsRequest) (availability.ReplaceBusyInput, error) {
	if req == nil {
		return availability.ReplaceBusyInput{}, invalidRequest("request is required")
	}
	calendarID := req.GetCalendarId()
	if calendarID == "" {
		return availability.ReplaceBusyInput{}, invalidRequest("calendar_id is required")
	}
	if len(calendarID) > maxIDLength {
		return availability.ReplaceBusyInput{}, invalidRequest("calendar_id must be at most %d characters", maxIDLength)
	}
	if req.GetRangeStart() == nil || req.GetRangeEnd() == nil {
		return availability.ReplaceBusyInput{}, invalidRequest("range_start and range_end are required")
	}
	start, err := timestampString("range_start", req.GetRangeStart())
	if err != nil {
		return availability.ReplaceBusyInput{}, err
	}
	end, err := timestampString("range_end", req.GetRangeEnd())
	if err != nil {
		return availability.ReplaceBusyInput{}, err
	}
	busy, err := toRawBusy(req.GetBusyPeriods())
	if err != nil {
		return availability.ReplaceBusyInput{}, err
	}
	return availability.ReplaceBusyInput{
		CalendarID:  calendarID,
		RangeStart:  start,
		RangeEnd:    end,
		BusyPeriods: busy,
	}, nil
}

// toWindow maps the optional window. Absent fields keep the service
// defaults: a nil DaySet means Monday to Friday, an empty one means no days.
func toWindow(w *openhoursv1.AvailabilityWindow) (availability.Window, error) {
	var out availability.Window
	if w == nil {
		return out, nil
	}
	if len(w.GetTimezone()) > maxTimezoneLength {
		return out, invalidRequest("timezone must be at most %d characters", maxTimezoneLength)
	}
	var err error
	if out.RangeStart, err = timestampString("range_start", w.GetRangeStart()); err != nil {
		return availability.Window{}, err
	}
	if out.RangeEnd, err = timestampString("range_end", w.GetRangeEnd()); err != nil {
		return availability.Window{}, err
	}
	out.HourStart = intValue(w.GetHourStart())
	out.HourEnd = intValue(w.GetHourEnd())
	if ds := w.GetWorkingDays(); ds != nil {
		out.WorkingDays = make([]int, 0, len(ds.GetDays()))
		for _, d := range ds.GetDays() {
			out.WorkingDays = append(out.WorkingDays, int(d))
		}
	}
	out.Timezone = w.GetTimezone()
	return out, nil
}

func toRawBusy(in []*openhoursv1.BusyPeriod) ([]domain.RawBusyPeriod, error) {
	if len(in) > maxBusyPeriods {
		return nil, invalidRequest("busy_periods must contain at most %d entries", maxBusyPeriods)
	}
	out := make([]domain.RawBusyPeriod, 0, len(in))
	for i, b := range in {
		if b.GetStart() == nil {
			return nil, invalidRequest("busy_periods[%d].start is required", i)
		}
		if b.GetEnd() == nil {
			return nil, invalidRequest("busy_periods[%d].end is required", i)
		}
		if len(b.GetSourceId()) > maxIDLength {
			return nil, invalidRequest("busy_periods[%d].source_id must be at most %d characters", i, maxIDLength)
		}
		start, err := timestampString(fmt.Sprintf("busy_periods[%d].start", i), b.GetStart())
		if err != nil {
			return nil, err
		}
		end, err := timestampString(fmt.Sprintf("busy_periods[%d].end", i), b.GetEnd())
		if err != nil {
			return nil, err
		}
		out = append(out, domain.RawBusyPeriod{Start: start, End: end, SourceID: b.GetSourceId()})
	}
	return out, nil
}

// timestampString renders ts in the form the service parses. A nil ts
// becomes "" so the service default applies.
func timestampString(field string, ts *timestamppb.Timestamp) (string, error) {
	if ts == nil {
		return "", nil
	}
	if err := ts.CheckValid(); err != nil {
		return "", &domain.ParseError{Field: field, Value: ts.String(), Err: err}
	}
	return ts.AsTime().UTC().Format(time.RFC3339Nano), nil
}

func intValue(v *wrapperspb.Int32Value) *int {
	if v == nil {
		return nil
	}
	n := int(v.GetValue())
	return &n
}

func toProtoResponse(res domain.AvailabilityResult) *openhoursv1.AvailabilityResponse {
	out := &openhoursv1.AvailabilityResponse{
		FreeSlots:   make([]*openhoursv1.FreeSlot, 0, len(res.FreeSlots)),
		BusyPeriods: make([]*openhoursv1.BusyPeriod, 0, len(res.BusyPeriods)),
		WorkingHours: &openhoursv1.WorkingHours{
			Start:    int32(res.WorkingHours.HourStart),
			End:      int32(res.WorkingHours.HourEnd),
			Days:     make([]int32, 0, len(res.WorkingHours.Days)),
			Timezone: res.WorkingHours.Timezone,
		},
		DateRange: &openhoursv1.DateRange{
			Start: timestamppb.New(res.DateRange.Start),
			End:   timestamppb.New(res.DateRange.End),
		},
	}
	for _, d := range res.WorkingHours.Days {
		out.WorkingHours.Days = append(out.WorkingHours.Days, int32(d))
	}
	for _, s := range res.FreeSlots {
		out.FreeSlots = append(out.FreeSlots, &openhoursv1.FreeSlot{
			Start:           timestamppb.New(s.Start),
			End:             timestamppb.New(s.End),
			DurationMinutes: int32(s.DurationMinutes),
		})
	}
	for _, b := range res.BusyPeriods {
		out.BusyPeriods = append(out.BusyPeriods, &openhoursv1.BusyPeriod{
			Start:    timestamppb.New(b.Start),
			End:      timestamppb.New(b.End),
			SourceId: b.SourceID,
		})
	}
	return out
}
