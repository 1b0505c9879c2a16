package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// slugify lowercases a name, drops apostrophes and joins the remaining
// alphanumeric runs with dashes, so "New Year's Day" becomes
// "new-years-day". Keeps ICS UIDs stable across exports.
func slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '\'':
			// part of a word, not a separator
		default:
			pendingDash = true
		}
	}
	return b.String()
}

// eventUID builds the stable identifier calendar apps use to match an event
// across refreshes.
func eventUID(date string, event SpecialEvent) string {
	return fmt.Sprintf("%s-%s@%s", date, slugify(event.Name), ICSDomain)
}

// icsText escapes the characters RFC 5545 reserves in TEXT property values.
// Event descriptions contain commas, which would otherwise split the value.
var icsText = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\n", `\n`,
)

// writeICSEvent emits one all-day VEVENT block.
func writeICSEvent(w io.Writer, date string, event SpecialEvent) {
	eventDate, err := time.Parse(DateLayout, date)
	if err != nil {
		return
	}

	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:%s\n", eventUID(date, event))
	fmt.Fprintf(w, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
	fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", eventDate.Format("20060102"))
	fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", eventDate.AddDate(0, 0, 1).Format("20060102"))
	fmt.Fprintf(w, "SUMMARY:%s\n", icsText.Replace(event.Name))
	fmt.Fprintf(w, "CATEGORIES:%s\n", event.Category)
	if event.Description != "" {
		fmt.Fprintf(w, "DESCRIPTION:%s\n", icsText.Replace(event.Description))
	}
	fmt.Fprintln(w, "END:VEVENT")
}

// WriteCalendarICS writes one year of special days as an iCalendar file.
func WriteCalendarICS(w io.Writer, cal YearCalendar) {
	// ICS header
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:%s %d\n", ICSCalendarName, cal.Year)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", cal.Timezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	for _, day := range cal.Days {
		for _, event := range day.Events {
			writeICSEvent(w, day.Date, event)
		}
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

// WriteCalendarCSV writes one row per event. Descriptions contain commas,
// so rows go through encoding/csv for quoting.
func WriteCalendarCSV(w io.Writer, cal YearCalendar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "DayOfWeek", "Name", "Type", "Region", "Description"}); err != nil {
		return err
	}
	for _, day := range cal.Days {
		for _, event := range day.Events {
			row := []string{
				day.Date,
				day.DayOfWeek,
				event.Name,
				string(event.Category),
				event.Region,
				event.Description,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCalendarJSON writes the full year calendar as JSON.
func WriteCalendarJSON(w io.Writer, cal YearCalendar) error {
	return json.NewEncoder(w).Encode(cal)
}

// WriteSubscriptionICS writes the iCalendar subscription feed. Unlike the
// download variant it carries METHOD:PUBLISH and a refresh interval, and its
// UIDs must stay stable so calendar apps update events instead of
// duplicating them.
func WriteSubscriptionICS(w io.Writer, timezone string, days []YearDay) {
	// ICS header for subscription
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintln(w, "METHOD:PUBLISH") // Required for subscriptions
	fmt.Fprintf(w, "X-WR-CALNAME:%s\n", ICSCalendarName)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", timezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")
	fmt.Fprintln(w, "X-PUBLISHED-TTL:PT1H") // Suggest refresh every 1 hour

	for _, day := range days {
		for _, event := range day.Events {
			writeICSEvent(w, day.Date, event)
		}
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

// GenerateICS serves a year of special days as an ICS download
func GenerateICS(w http.ResponseWriter, cal YearCalendar) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=special_days_%d.ics", cal.Year))
	WriteCalendarICS(w, cal)
}

// GenerateCSV serves a year of special days as a CSV download
func GenerateCSV(w http.ResponseWriter, cal YearCalendar) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=special_days_%d.csv", cal.Year))
	if err := WriteCalendarCSV(w, cal); err != nil {
		log.Printf("Error writing CSV export: %v", err)
	}
}

// GenerateJSON serves a year of special days as a JSON download
func GenerateJSON(w http.ResponseWriter, cal YearCalendar) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=special_days_%d.json", cal.Year))
	if err := WriteCalendarJSON(w, cal); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// GenerateSubscriptionICS serves the subscription feed inline.
// No Content-Disposition header - calendar apps need inline content for
// subscriptions.
func GenerateSubscriptionICS(w http.ResponseWriter, timezone string, days []YearDay) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	WriteSubscriptionICS(w, timezone, days)
}
