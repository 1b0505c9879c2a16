package app

import "time"

// EventsForYear walks every day of the year and returns the days that carry
// at least one event. Feeds the export surface and the subscription feed.
func EventsForYear(year int, source EventSource) []YearDay {
	var days []YearDay
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		events := collectEvents(d, source)
		if len(events) == 0 {
			continue
		}
		days = append(days, YearDay{
			Date:      d.Format(DateLayout),
			DayOfWeek: d.Weekday().String(),
			Events:    events,
		})
	}
	return days
}

// BuildYearCalendar packages a year of event days with the zone they are
// served in.
func BuildYearCalendar(year int, loc *time.Location, source EventSource) YearCalendar {
	return YearCalendar{
		Year:     year,
		Timezone: loc.String(),
		Days:     EventsForYear(year, source),
	}
}
