package app

import (
	"time"
)

// LastOccurrence selects the last occurrence of a weekday in a month instead
// of a counted one.
const LastOccurrence = -1

// FloatingRule describes a holiday that moves from year to year: the Nth
// (or last) occurrence of a weekday within a month, optionally shifted by a
// fixed number of days.
type FloatingRule struct {
	Event      SpecialEvent
	Month      time.Month
	Weekday    time.Weekday
	Occurrence int // 1..4, or LastOccurrence
	Offset     int // days added after resolving the weekday
}

// floatingRules are evaluated against the query date's year on every lookup.
var floatingRules = []FloatingRule{
	{
		Event:      SpecialEvent{Name: "Martin Luther King Jr. Day", Category: CategoryPublicHoliday, Description: "Honors the civil rights leader Martin Luther King Jr.", Region: "US"},
		Month:      time.January,
		Weekday:    time.Monday,
		Occurrence: 3,
	},
	{
		Event:      SpecialEvent{Name: "Presidents' Day", Category: CategoryPublicHoliday, Description: "Honors the presidents of the United States", Region: "US"},
		Month:      time.February,
		Weekday:    time.Monday,
		Occurrence: 3,
	},
	{
		Event:      SpecialEvent{Name: "Mother's Day", Category: CategoryObservance, Description: "Celebration honoring mothers and motherhood", Region: "US"},
		Month:      time.May,
		Weekday:    time.Sunday,
		Occurrence: 2,
	},
	{
		Event:      SpecialEvent{Name: "Memorial Day", Category: CategoryPublicHoliday, Description: "Honors U.S. military personnel who died in service", Region: "US"},
		Month:      time.May,
		Weekday:    time.Monday,
		Occurrence: LastOccurrence,
	},
	{
		Event:      SpecialEvent{Name: "Father's Day", Category: CategoryObservance, Description: "Celebration honoring fathers and fatherhood", Region: "US"},
		Month:      time.June,
		Weekday:    time.Sunday,
		Occurrence: 3,
	},
	{
		Event:      SpecialEvent{Name: "Labor Day", Category: CategoryPublicHoliday, Description: "Celebrates the American labor movement", Region: "US"},
		Month:      time.September,
		Weekday:    time.Monday,
		Occurrence: 1,
	},
	{
		Event:      SpecialEvent{Name: "Columbus Day", Category: CategoryPublicHoliday, Description: "Commemorates the arrival of Christopher Columbus in the Americas in 1492", Region: "US"},
		Month:      time.October,
		Weekday:    time.Monday,
		Occurrence: 2,
	},
	{
		Event:      SpecialEvent{Name: "Thanksgiving Day", Category: CategoryPublicHoliday, Description: "National day of giving thanks, marked by family meals", Region: "US"},
		Month:      time.November,
		Weekday:    time.Thursday,
		Occurrence: 4,
	},
	{
		// Day after Thanksgiving. Pinning the 4th Friday instead would land
		// a week early whenever November starts on a Friday.
		Event:      SpecialEvent{Name: "Black Friday", Category: CategoryObservance, Description: "Traditional start of the holiday shopping season", Region: "US"},
		Month:      time.November,
		Weekday:    time.Thursday,
		Occurrence: 4,
		Offset:     1,
	},
}

// easterRule is an observance at a fixed day offset from Easter Sunday.
type easterRule struct {
	Event  SpecialEvent
	Offset int // days relative to Easter Sunday
}

var easterRules = []easterRule{
	{
		Event:  SpecialEvent{Name: "Good Friday", Category: CategoryObservance, Description: "Christian commemoration of the crucifixion of Jesus"},
		Offset: -2,
	},
	{
		Event:  SpecialEvent{Name: "Easter Sunday", Category: CategoryObservance, Description: "Christian celebration of the resurrection of Jesus"},
		Offset: 0,
	},
}

// DateIn resolves the rule to its concrete date in the given year.
func (r FloatingRule) DateIn(year int) time.Time {
	var date time.Time
	if r.Occurrence == LastOccurrence {
		date = LastWeekdayOfMonth(year, r.Month, r.Weekday)
	} else {
		date = NthWeekdayOfMonth(year, r.Month, r.Weekday, r.Occurrence)
	}
	return date.AddDate(0, 0, r.Offset)
}

// NthWeekdayOfMonth returns the date of the nth occurrence of weekday in the
// given month and year. The result is not clamped: asking for a fifth
// occurrence that the month does not have rolls into the following month.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+7*(n-1))
}

// LastWeekdayOfMonth returns the date of the last occurrence of weekday in
// the given month and year, February of leap years included.
func LastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) time.Time {
	// Day 0 of the following month normalizes to this month's last day.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	daysBack := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -daysBack)
}

// EasterSunday calculates Easter Sunday for the given year using the
// Meeus/Jones/Butcher algorithm.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FloatingEventsForDate evaluates every floating rule against the date's
// year and returns the events whose computed date matches it: weekday rules
// first, Easter-derived observances after them. Pure and recomputed on every
// call.
func FloatingEventsForDate(date time.Time) []SpecialEvent {
	year, month, day := date.Date()

	var events []SpecialEvent
	for _, rule := range floatingRules {
		if sameDate(rule.DateIn(year), year, month, day) {
			events = append(events, rule.Event)
		}
	}

	easter := EasterSunday(year)
	for _, rule := range easterRules {
		if sameDate(easter.AddDate(0, 0, rule.Offset), year, month, day) {
			events = append(events, rule.Event)
		}
	}
	return events
}

func sameDate(t time.Time, year int, month time.Month, day int) bool {
	ty, tm, td := t.Date()
	return ty == year && tm == month && td == day
}

// FloatingEventsForDate implements EventSource.
func (StaticCatalog) FloatingEventsForDate(date time.Time) []SpecialEvent {
	return FloatingEventsForDate(date)
}
