package rest

import (
	"time"

	"openhours/backend/internal/domain"
	"openhours/backend/internal/service/availability"
)

func (w AvailabilityWindow) toWindow() availability.Window {
	return availability.Window{
		RangeStart:  w.RangeStart,
		RangeEnd:    w.RangeEnd,
		HourStart:   w.HourStart,
		HourEnd:     w.HourEnd,
		WorkingDays: w.WorkingDays,
		Timezone:    w.Timezone,
	}
}

func (r *GetAvailabilityRequest) ComputeInput() availability.ComputeInput {
	return availability.ComputeInput{
		Window:      r.AvailabilityWindow.toWindow(),
		BusyPeriods: rawBusy(r.BusyPeriods),
	}
}

func (r *CheckAvailabilityRequest) CheckInput() availability.CheckInput {
	return availability.CheckInput{
		Window:      r.AvailabilityWindow.toWindow(),
		CalendarIDs: r.CalendarIDs,
	}
}

func (r *ReplaceBusyPeriodsRequest) ReplaceBusyInput() availability.ReplaceBusyInput {
	return availability.ReplaceBusyInput{
		CalendarID:  r.CalendarID,
		RangeStart:  r.RangeStart,
		RangeEnd:    r.RangeEnd,
		BusyPeriods: rawBusy(r.BusyPeriods),
	}
}

func NewAvailabilityResponse(res domain.AvailabilityResult) *AvailabilityResponse {
	out := &AvailabilityResponse{
		FreeSlots:   make([]FreeSlot, 0, len(res.FreeSlots)),
		BusyPeriods: make([]BusyPeriod, 0, len(res.BusyPeriods)),
		WorkingHours: WorkingHours{
			Start:    res.WorkingHours.HourStart,
			End:      res.WorkingHours.HourEnd,
			Days:     append([]int{}, res.WorkingHours.Days...),
			Timezone: res.WorkingHours.Timezone,
		},
		DateRange: DateRange{
			Start: formatInstant(res.DateRange.Start),
			End:   formatInstant(res.DateRange.End),
		},
	}
	for _, s := range res.FreeSlots {
		out.FreeSlots = append(out.FreeSlots, FreeSlot{
			Start:           formatInstant(s.Start),
			End:             formatInstant(s.End),
			DurationMinutes: s.DurationMinutes,
		})
	}
	for _, b := range res.BusyPeriods {
		out.BusyPeriods = append(out.BusyPeriods, BusyPeriod{
			Start:    formatInstant(b.Start),
			End:      formatInstant(b.End),
			SourceID: b.SourceID,
		})
	}
	return out
}

func rawBusy(in []BusyPeriod) []domain.RawBusyPeriod {
	out := make([]domain.RawBusyPeriod, 0, len(in))
	for _, b := range in {
		out = append(out, domain.RawBusyPeriod{Start: b.Start, End: b.End, SourceID: b.SourceID})
	}
	return out
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
