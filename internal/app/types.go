package app

import "time"

// EventCategory classifies a special event. The values double as the wire
// format for the "type" field in API responses.
type EventCategory string

const (
	CategoryPublicHoliday    EventCategory = "PublicHoliday"
	CategoryObservance       EventCategory = "Observance"
	CategoryInternationalDay EventCategory = "InternationalDay"
	CategoryHistoricalFact   EventCategory = "HistoricalFact"
)

// SpecialEvent is a single holiday, observance, international day or
// historical fact attached to a calendar date. Region is empty for
// international events.
type SpecialEvent struct {
	Name        string        `json:"name"`
	Category    EventCategory `json:"type"`
	Description string        `json:"description,omitempty"`
	Region      string        `json:"region,omitempty"`
}

// CalendarKey is a (month, day) pair used to key the static event tables.
// Keys that can never occur (e.g. February 30) are legal and simply never match.
type CalendarKey struct {
	Month int
	Day   int
}

// TodayResult is the full answer for one resolved date.
type TodayResult struct {
	Date                 string         `json:"date"`
	DayOfWeek            string         `json:"dayOfWeek"`
	Timezone             string         `json:"timezone"`
	IsDaylightSavingTime bool           `json:"isDaylightSavingTime"`
	Events               []SpecialEvent `json:"events"`
	Message              string         `json:"message"`
}

// YearDay is one calendar date of a year together with its events, used by
// the year listing and the export formats.
type YearDay struct {
	Date      string         `json:"date"`
	DayOfWeek string         `json:"dayOfWeek"`
	Events    []SpecialEvent `json:"events"`
}

// YearCalendar is the response shape for the per-year listing.
type YearCalendar struct {
	Year     int       `json:"year"`
	Timezone string    `json:"timezone"`
	Days     []YearDay `json:"days"`
}

// EventSource supplies the events for a date. The static in-process catalog
// is the only implementation today; the interface exists so a future
// external source can be swapped in without touching the handlers.
type EventSource interface {
	EventsForDate(month, day int) []SpecialEvent
	FloatingEventsForDate(date time.Time) []SpecialEvent
}
