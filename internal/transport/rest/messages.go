package rest

// AvailabilityWindow carries the optional query parameters shared by the
// availability requests. An absent working_days selects Monday to Friday; an
// explicit empty list selects no days.
type AvailabilityWindow struct {
	RangeStart  string `json:"range_start,omitempty"`
	RangeEnd    string `json:"range_end,omitempty"`
	HourStart   *int   `json:"hour_start,omitempty"`
	HourEnd     *int   `json:"hour_end,omitempty"`
	WorkingDays []int  `json:"working_days"`
	Timezone    string `json:"timezone,omitempty" validate:"max=64"`
}

type BusyPeriod struct {
	Start    string `json:"start" validate:"required"`
	End      string `json:"end" validate:"required"`
	SourceID string `json:"source_id,omitempty" validate:"max=256"`
}

type GetAvailabilityRequest struct {
	AvailabilityWindow
	BusyPeriods []BusyPeriod `json:"busy_periods" validate:"max=10000,dive"`
}

type CheckAvailabilityRequest struct {
	AvailabilityWindow
	CalendarIDs []string `json:"calendar_ids,omitempty" validate:"max=50,dive,max=256"`
}

type ReplaceBusyPeriodsRequest struct {
	CalendarID  string       `json:"calendar_id" validate:"required,max=256"`
	RangeStart  string       `json:"range_start" validate:"required"`
	RangeEnd    string       `json:"range_end" validate:"required"`
	BusyPeriods []BusyPeriod `json:"busy_periods" validate:"max=10000,dive"`
}

type ReplaceBusyPeriodsResponse struct {
	CalendarID string `json:"calendar_id"`
	Stored     int    `json:"stored"`
}

type FreeSlot struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
}

type WorkingHours struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Days     []int  `json:"days"`
	Timezone string `json:"timezone"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	FreeSlots    []FreeSlot   `json:"free_slots"`
	BusyPeriods  []BusyPeriod `json:"busy_periods"`
	WorkingHours WorkingHours `json:"working_hours"`
	DateRange    DateRange    `json:"date_range"`
}
