package app

import (
	"fmt"
	"time"

	// Zone lookups must work on hosts that ship without a system tzdata.
	_ "time/tzdata"
)

// windowsZoneAliases maps Windows display names for common zones onto their
// IANA identifiers, so configs written on either platform resolve.
var windowsZoneAliases = map[string]string{
	"Eastern Standard Time":     "America/New_York",
	"Central Standard Time":     "America/Chicago",
	"Mountain Standard Time":    "America/Denver",
	"Pacific Standard Time":     "America/Los_Angeles",
	"Alaskan Standard Time":     "America/Anchorage",
	"Hawaiian Standard Time":    "Pacific/Honolulu",
	"GMT Standard Time":         "Europe/London",
	"W. Europe Standard Time":   "Europe/Berlin",
	"Tokyo Standard Time":       "Asia/Tokyo",
	"India Standard Time":       "Asia/Kolkata",
	"AUS Eastern Standard Time": "Australia/Sydney",
}

// LoadZone resolves a timezone name to a location. An empty name falls back
// to DefaultTimezone, Windows display names are translated to their IANA
// equivalents before lookup.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	if iana, ok := windowsZoneAliases[name]; ok {
		name = iana
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// ZoneLabel renders the zone of the given instant as abbreviation plus UTC
// offset, e.g. "EST (UTC-5)" or "IST (UTC+5:30)".
func ZoneLabel(t time.Time) string {
	abbr, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes != 0 {
		return fmt.Sprintf("%s (UTC%s%d:%02d)", abbr, sign, hours, minutes)
	}
	return fmt.Sprintf("%s (UTC%s%d)", abbr, sign, hours)
}
