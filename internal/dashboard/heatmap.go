package dashboard

import (
	"fmt"

	"github.com/zedpay/ussd-analytics/internal/models"
)

// HeatmapCell is one of the 84 peak-hours cells (7 days x 12 two-hour
// buckets).
type HeatmapCell struct {
	Day       string `json:"day"`
	Hour      string `json:"hour"`
	Value     int64  `json:"value"`
	Intensity int    `json:"intensity"`
	IsPeak    bool   `json:"isPeak"`
}

const bucketsPerDay = 12

// Output is Monday-first even though Postgres DOW is Sunday-indexed.
// heatmapDays[i] is the output label for matrix row i; dowToRow maps the
// source day index onto that row.
var heatmapDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func dowToRow(dow int) int {
	// 0=Sunday goes last; 1=Monday becomes row 0.
	return (dow + 6) % 7
}

// BucketLabelForIndex formats a two-hour bucket index as "HH-HH". The
// last bucket wraps to "22-00".
func BucketLabelForIndex(i int) string {
	start := i * 2
	end := (start + 2) % 24
	return fmt.Sprintf("%02d-%02d", start, end)
}

// BuildHeatmap folds raw (dayOfWeek, hourOfDay, count) triples into the
// flat 84-cell peak-hours payload. Intensity buckets each cell by its
// ratio to the hottest cell; a cell at the max is both intensity 5 and
// the peak marker.
func BuildHeatmap(raw []models.HourlyCount) []HeatmapCell {
	var matrix [7][bucketsPerDay]int64
	for _, hc := range raw {
		if hc.DayOfWeek < 0 || hc.DayOfWeek > 6 || hc.HourOfDay < 0 || hc.HourOfDay > 23 {
			continue
		}
		matrix[dowToRow(hc.DayOfWeek)][hc.HourOfDay/2] += hc.Count
	}

	var max int64
	for day := 0; day < 7; day++ {
		for bucket := 0; bucket < bucketsPerDay; bucket++ {
			if matrix[day][bucket] > max {
				max = matrix[day][bucket]
			}
		}
	}

	cells := make([]HeatmapCell, 0, 7*bucketsPerDay)
	for day := 0; day < 7; day++ {
		for bucket := 0; bucket < bucketsPerDay; bucket++ {
			value := matrix[day][bucket]
			ratio := 0.0
			if max > 0 {
				ratio = float64(value) / float64(max)
			}
			cells = append(cells, HeatmapCell{
				Day:       heatmapDays[day],
				Hour:      BucketLabelForIndex(bucket),
				Value:     value,
				Intensity: intensityBand(ratio),
				IsPeak:    ratio > 0.9,
			})
		}
	}
	return cells
}

func intensityBand(ratio float64) int {
	switch {
	case ratio > 0.9:
		return 5
	case ratio > 0.7:
		return 4
	case ratio > 0.5:
		return 3
	case ratio > 0.3:
		return 2
	case ratio > 0.1:
		return 1
	default:
		return 0
	}
}
