package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTodayIndependenceDay(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)
	instant := time.Date(2024, 7, 4, 16, 0, 0, 0, time.UTC) // noon in New York

	result := BuildToday(instant, loc, StaticCatalog{})

	assert.Equal(t, "2024-07-04", result.Date)
	assert.Equal(t, "Thursday", result.DayOfWeek)
	assert.Equal(t, "EDT (UTC-4)", result.Timezone)
	assert.True(t, result.IsDaylightSavingTime)

	require.Len(t, result.Events, 2)
	assert.Equal(t, "Independence Day", result.Events[0].Name)
	assert.Equal(t, "Declaration of Independence adopted", result.Events[1].Name)

	assert.Equal(t,
		"Today is Independence Day! Historical note - on this day: Declaration of Independence adopted.",
		result.Message)
}

func TestBuildTodayNewYear(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)
	instant := time.Date(2026, 1, 1, 14, 0, 0, 0, time.UTC)

	result := BuildToday(instant, loc, StaticCatalog{})

	assert.Equal(t, "2026-01-01", result.Date)
	assert.Equal(t, "Thursday", result.DayOfWeek)
	assert.Equal(t, "EST (UTC-5)", result.Timezone)
	assert.False(t, result.IsDaylightSavingTime)

	require.Len(t, result.Events, 2)
	assert.Equal(t, "New Year's Day", result.Events[0].Name)
	assert.Equal(t, "World Day of Peace", result.Events[1].Name)
	assert.Equal(t, "Today is New Year's Day! It's also World Day of Peace.", result.Message)
}

func TestBuildTodayFloatingHoliday(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)
	instant := time.Date(2025, 11, 27, 15, 0, 0, 0, time.UTC)

	result := BuildToday(instant, loc, StaticCatalog{})

	assert.Equal(t, "2025-11-27", result.Date)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "Thanksgiving Day", result.Events[0].Name)
	assert.Equal(t, "Today is Thanksgiving Day!", result.Message)
}

func TestBuildTodayEmptyDay(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)
	instant := time.Date(2026, 8, 4, 12, 0, 0, 0, time.UTC)

	result := BuildToday(instant, loc, StaticCatalog{})

	assert.Empty(t, result.Events)
	assert.Equal(t,
		"Today is Tuesday, August 4, 2026. While there are no widely recognized holidays or observances, every day is an opportunity to make something special happen!",
		result.Message)

	// An empty day still serializes its events as a list, not null.
	body, err := json.Marshal(result)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `"events":[]`), "got body: %s", body)
}

func TestBuildTodayIdempotent(t *testing.T) {
	loc, err := LoadZone("")
	require.NoError(t, err)
	instant := time.Date(2025, 11, 27, 15, 4, 5, 0, time.UTC)

	first := BuildToday(instant, loc, StaticCatalog{})
	second := BuildToday(instant, loc, StaticCatalog{})
	assert.Equal(t, first, second)

	firstBody, err := json.Marshal(first)
	require.NoError(t, err)
	secondBody, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstBody, secondBody, "frozen clock must yield byte-identical output")
}

func TestBuildTodayDSTFlagFlips(t *testing.T) {
	loc, err := LoadZone("America/New_York")
	require.NoError(t, err)

	before := BuildToday(time.Date(2024, 3, 10, 6, 59, 59, 0, time.UTC), loc, StaticCatalog{})
	after := BuildToday(time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC), loc, StaticCatalog{})

	assert.False(t, before.IsDaylightSavingTime)
	assert.True(t, after.IsDaylightSavingTime)
	assert.Equal(t, before.Date, after.Date, "the civil date does not change at the transition")
	assert.Equal(t, "EST (UTC-5)", before.Timezone)
	assert.Equal(t, "EDT (UTC-4)", after.Timezone)
}
