package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRangeFallsBackToDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  Range
		want Range
	}{
		{"24h", Range7d, Range24h},
		{"7d", Range30d, Range7d},
		{"30d", Range7d, Range30d},
		{"90d", Range7d, Range90d},
		{"ytd", Range7d, RangeYTD},
		{"", Range7d, Range7d},
		{"", Range30d, Range30d},
		{"1y", Range7d, Range7d},
		{"banana", Range30d, Range30d},
		{"7D", Range30d, Range7d},
		{" 24h ", Range7d, Range24h},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseRange(tc.raw, tc.def), "raw=%q", tc.raw)
	}
}

func TestParseRelativeRangeRejectsYTD(t *testing.T) {
	cases := []struct {
		raw  string
		def  Range
		want Range
	}{
		{"ytd", Range7d, Range7d},
		{"ytd", Range30d, Range30d},
		{"YTD", Range30d, Range30d},
		{"24h", Range7d, Range24h},
		{"90d", Range30d, Range90d},
		{"banana", Range7d, Range7d},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseRelativeRange(tc.raw, tc.def), "raw=%q", tc.raw)
	}
}

func TestGranularity(t *testing.T) {
	assert.Equal(t, GranularityHour, Range24h.Granularity())
	assert.Equal(t, GranularityDay, Range7d.Granularity())
	assert.Equal(t, GranularityDay, Range90d.Granularity())
	assert.Equal(t, GranularityDay, RangeYTD.Granularity())
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, now.Add(-24*time.Hour), Range24h.WindowStart(now))
	assert.Equal(t, now.Add(-7*24*time.Hour), Range7d.WindowStart(now))
	assert.Equal(t, now.Add(-30*24*time.Hour), Range30d.WindowStart(now))

	ytd := RangeYTD.WindowStart(now)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), ytd)
}

func TestPreviousWindowIsEqualLengthAndAdjacent(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	start, end := Range7d.PreviousWindow(now)
	assert.Equal(t, now.Add(-14*24*time.Hour), start)
	assert.Equal(t, now.Add(-7*24*time.Hour), end)
	// The previous window ends exactly where the current one begins.
	assert.Equal(t, Range7d.WindowStart(now), end)
}
