package dashboard

import (
	"fmt"
	"time"

	"github.com/zedpay/ussd-analytics/internal/query"
)

const (
	hourBucketLayout = "15:04"
	dayBucketLayout  = "2006-01-02"
)

// BucketLabel formats a bucket start for the volume series: "HH:00" for
// hourly buckets, ISO date for daily ones.
func BucketLabel(bucket time.Time, granularity query.Granularity) string {
	if granularity == query.GranularityHour {
		return bucket.Format(hourBucketLayout)
	}
	return bucket.Format(dayBucketLayout)
}

// ParseBucketLabel parses a label produced by BucketLabel with the same
// granularity.
func ParseBucketLabel(label string, granularity query.Granularity) (time.Time, error) {
	if granularity == query.GranularityHour {
		return time.Parse(hourBucketLayout, label)
	}
	return time.Parse(dayBucketLayout, label)
}

// defaultPeakHour stands in when the window has no transactions at all;
// noon is the least surprising needle position for the gauge.
const defaultPeakHour = 12

// HourLabel formats an hour of day (0-23) as a 12-hour clock string.
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// PeakHourLabel formats the peak hour, defaulting to noon when no peak
// row exists.
func PeakHourLabel(hour int, ok bool) string {
	if !ok {
		hour = defaultPeakHour
	}
	return HourLabel(hour)
}
