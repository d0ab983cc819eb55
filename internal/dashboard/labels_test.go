package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedpay/ussd-analytics/internal/query"
)

func TestBucketLabelRoundTrip(t *testing.T) {
	bucket := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)

	hourly := BucketLabel(bucket, query.GranularityHour)
	assert.Equal(t, "14:00", hourly)
	parsed, err := ParseBucketLabel(hourly, query.GranularityHour)
	require.NoError(t, err)
	assert.Equal(t, bucket.Hour(), parsed.Hour())

	daily := BucketLabel(bucket, query.GranularityDay)
	assert.Equal(t, "2024-03-05", daily)
	parsedDay, err := ParseBucketLabel(daily, query.GranularityDay)
	require.NoError(t, err)
	assert.Equal(t, bucket.Year(), parsedDay.Year())
	assert.Equal(t, bucket.Month(), parsedDay.Month())
	assert.Equal(t, bucket.Day(), parsedDay.Day())
}

func TestHourLabel(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HourLabel(tc.hour))
	}
}

func TestPeakHourLabelDefaultsToNoon(t *testing.T) {
	assert.Equal(t, "12 PM", PeakHourLabel(0, false))
	assert.Equal(t, "12 AM", PeakHourLabel(0, true))
	assert.Equal(t, "2 PM", PeakHourLabel(14, true))
}
