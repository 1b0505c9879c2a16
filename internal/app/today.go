package app

import "time"

// collectEvents gathers every event matching the civil date: fixed-date
// entries and historical facts from the catalog, then floating holidays.
// The slice is never nil so an empty day serializes as [].
func collectEvents(date time.Time, source EventSource) []SpecialEvent {
	fixed := source.EventsForDate(int(date.Month()), date.Day())
	floating := source.FloatingEventsForDate(date)

	events := make([]SpecialEvent, 0, len(fixed)+len(floating))
	events = append(events, fixed...)
	events = append(events, floating...)
	return events
}

// BuildToday converts the instant to a civil date in loc, resolves the
// date's events and composes the summary. Same instant, same result.
func BuildToday(now time.Time, loc *time.Location, source EventSource) TodayResult {
	local := now.In(loc)
	events := collectEvents(local, source)

	return TodayResult{
		Date:                 local.Format(DateLayout),
		DayOfWeek:            local.Weekday().String(),
		Timezone:             ZoneLabel(local),
		IsDaylightSavingTime: local.IsDST(),
		Events:               events,
		Message:              ComposeMessage(local, events),
	}
}
