package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Aggregate row types returned by the analytics repository. They live for
// a single request and are never persisted.

// VolumeRow is one time bucket of the transaction volume series.
type VolumeRow struct {
	Bucket              time.Time
	Total               int64
	Electricity         int64
	Water               int64
	Airtime             int64
	MobileMoney         int64
	Banking             int64
	AvgSessionSeconds   float64
	SuccessRatePct      float64
	Revenue             decimal.Decimal
	FailedTransactions  int64
	PeakConcurrentUsers int64
}

// GeneralMetricsRow summarizes engaged-session transactions in a window.
type GeneralMetricsRow struct {
	Total          int64
	Successful     int64
	Failed         int64
	SuccessRatePct float64
}

// HourCount is a transaction count for one hour of day (0-23).
type HourCount struct {
	Hour  int
	Count int64
}

// KeyCount pairs a group-by key (province, network) with a count.
type KeyCount struct {
	Key   string
	Count int64
}

// NetworkRow is per-network transaction volume and success rate.
type NetworkRow struct {
	Name           string
	Total          int64
	SuccessRatePct float64
}

// RevenueRow is one calendar day of successful-transaction revenue,
// pivoted by service grouping.
type RevenueRow struct {
	Date        time.Time
	Electricity decimal.Decimal
	Water       decimal.Decimal
	Airtime     decimal.Decimal
	MobileMoney decimal.Decimal
	Total       decimal.Decimal
}

// HourlyCount is a raw heatmap cell: day of week (0=Sunday, Postgres DOW)
// by hour of day.
type HourlyCount struct {
	DayOfWeek int
	HourOfDay int
	Count     int64
}
