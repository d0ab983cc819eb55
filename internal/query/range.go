package query

import (
	"strings"
	"time"
)

// Granularity is the bucket width used when grouping a time series.
type Granularity string

const (
	GranularityHour Granularity = "hour"
	GranularityDay  Granularity = "day"
)

// Range is a dashboard lookback token. The vocabulary is closed; anything
// outside it resolves to the endpoint's default rather than erroring, so a
// bad query string degrades instead of failing the dashboard.
type Range string

const (
	Range24h Range = "24h"
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
	RangeYTD Range = "ytd"
)

// ParseRange resolves a raw token against the closed vocabulary, falling
// back to def for anything unrecognized (including the empty string).
func ParseRange(raw string, def Range) Range {
	switch Range(strings.ToLower(strings.TrimSpace(raw))) {
	case Range24h:
		return Range24h
	case Range7d:
		return Range7d
	case Range30d:
		return Range30d
	case Range90d:
		return Range90d
	case RangeYTD:
		return RangeYTD
	default:
		return def
	}
}

// ParseRelativeRange resolves like ParseRange but treats ytd as
// unrecognized. The calendar-year token only carries meaning on the
// revenue trend; relative-window endpoints fall back to def.
func ParseRelativeRange(raw string, def Range) Range {
	rng := ParseRange(raw, def)
	if rng == RangeYTD {
		return def
	}
	return rng
}

// Granularity returns hour buckets for 24h and day buckets otherwise.
func (r Range) Granularity() Granularity {
	if r == Range24h {
		return GranularityHour
	}
	return GranularityDay
}

// WindowStart returns the inclusive lower bound of the lookback window.
// ytd is absolute: the first instant of the current calendar year.
func (r Range) WindowStart(now time.Time) time.Time {
	if r == RangeYTD {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return now.Add(-r.length(now))
}

// PreviousWindow returns the immediately preceding period of equal
// length: [now-2L, now-L). Used for trend comparison.
func (r Range) PreviousWindow(now time.Time) (start, end time.Time) {
	l := r.length(now)
	return now.Add(-2 * l), now.Add(-l)
}

func (r Range) length(now time.Time) time.Duration {
	switch r {
	case Range24h:
		return 24 * time.Hour
	case Range7d:
		return 7 * 24 * time.Hour
	case Range30d:
		return 30 * 24 * time.Hour
	case Range90d:
		return 90 * 24 * time.Hour
	case RangeYTD:
		return now.Sub(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()))
	default:
		return 7 * 24 * time.Hour
	}
}
