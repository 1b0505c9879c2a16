package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadZoneDefault(t *testing.T) {
	loc, err := LoadZone("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, loc.String())
}

func TestLoadZoneIANAName(t *testing.T) {
	loc, err := LoadZone("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadZoneWindowsAlias(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"Eastern Standard Time", "America/New_York"},
		{"Pacific Standard Time", "America/Los_Angeles"},
		{"India Standard Time", "Asia/Kolkata"},
	}

	for _, tt := range tests {
		loc, err := LoadZone(tt.alias)
		require.NoError(t, err, tt.alias)
		assert.Equal(t, tt.want, loc.String())
	}
}

func TestLoadZoneUnknown(t *testing.T) {
	_, err := LoadZone("Nowhere/Special")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nowhere/Special")
}

func TestZoneLabel(t *testing.T) {
	newYork, err := LoadZone("America/New_York")
	require.NoError(t, err)
	kolkata, err := LoadZone("Asia/Kolkata")
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"standard time", time.Date(2024, 1, 15, 12, 0, 0, 0, newYork), "EST (UTC-5)"},
		{"daylight saving time", time.Date(2024, 7, 4, 12, 0, 0, 0, newYork), "EDT (UTC-4)"},
		{"half-hour offset", time.Date(2024, 1, 15, 12, 0, 0, 0, kolkata), "IST (UTC+5:30)"},
		{"utc", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "UTC (UTC+0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ZoneLabel(tt.at))
		})
	}
}

func TestSpringForwardBoundary(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 02:00 local jumps to 03:00.
	before := time.Date(2024, 3, 10, 6, 59, 59, 0, time.UTC).In(loc)
	after := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC).In(loc)

	assert.False(t, before.IsDST())
	assert.True(t, after.IsDST())
	assert.Equal(t, "2024-03-10", before.Format(DateLayout))
	assert.Equal(t, "2024-03-10", after.Format(DateLayout))
	assert.Equal(t, "EST (UTC-5)", ZoneLabel(before))
	assert.Equal(t, "EDT (UTC-4)", ZoneLabel(after))
}

func TestFallBackBoundary(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)

	// 2024-11-03 02:00 local falls back to 01:00.
	before := time.Date(2024, 11, 3, 5, 59, 59, 0, time.UTC).In(loc)
	after := time.Date(2024, 11, 3, 6, 0, 0, 0, time.UTC).In(loc)

	assert.True(t, before.IsDST())
	assert.False(t, after.IsDST())
	assert.Equal(t, "2024-11-03", before.Format(DateLayout))
	assert.Equal(t, "2024-11-03", after.Format(DateLayout))
}

func TestCivilDateTrailsUTC(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)

	// Late evening in New York is already the next day in UTC.
	instant := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
	local := instant.In(loc)
	assert.Equal(t, "2024-03-09", local.Format(DateLayout))
	assert.Equal(t, time.Saturday, local.Weekday())
}
