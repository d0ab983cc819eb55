package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zedpay/ussd-analytics/internal/models"
	"github.com/zedpay/ussd-analytics/internal/query"
)

// Dimension selects the group-by key for user distributions.
type Dimension string

const (
	DimensionProvince Dimension = "province"
	DimensionNetwork  Dimension = "network"
)

// ErrUnknownDimension indicates an unsupported distribution key.
var ErrUnknownDimension = errors.New("repository: unknown dimension")

// rawHourlyLookback is fixed regardless of the caller-supplied range so
// the heatmap reflects a stable 30-day baseline.
const rawHourlyLookback = "30 days"

// activeSessionRecency bounds what counts as an active session.
const activeSessionRecency = "10 minutes"

// AnalyticsRepository executes the grouped aggregate queries behind the
// dashboard endpoints. All methods are pure reads and safe for
// concurrent use.
type AnalyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository returns the repository.
func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// VolumeByBucket returns the bucketed volume series for the window,
// ascending by bucket. Sessions join via LEFT JOIN so transactions with
// no resolvable session still count; their duration contributes 0.
func (r *AnalyticsRepository) VolumeByBucket(ctx context.Context, windowStart time.Time, granularity query.Granularity, predicate query.Predicate) ([]models.VolumeRow, error) {
	clause, predArgs := predicate.Clause("t.transaction_type", 3)
	stmt := fmt.Sprintf(`
		SELECT
			DATE_TRUNC($1, t.transaction_timestamp) AS time_bucket,
			COUNT(*) AS total,
			COUNT(CASE WHEN t.transaction_type = 'electricity_token' THEN 1 END) AS electricity,
			COUNT(CASE WHEN t.transaction_type = 'water_bill_payment' THEN 1 END) AS water,
			COUNT(CASE WHEN t.transaction_type = 'airtime_purchase' THEN 1 END) AS airtime,
			COUNT(CASE WHEN t.transaction_type IN ('money_transfer', 'bill_payment') THEN 1 END) AS mobile_money,
			COUNT(CASE WHEN t.transaction_type IN ('balance_check', 'account_registration') THEN 1 END) AS banking,
			COALESCE(AVG(s.session_duration), 0)::FLOAT AS avg_session_time,
			COALESCE((COUNT(CASE WHEN t.transaction_status = 'success' THEN 1 END)::FLOAT / NULLIF(COUNT(*), 0)) * 100, 0) AS success_rate,
			COALESCE(SUM(t.transaction_amount), 0)::TEXT AS revenue,
			COUNT(CASE WHEN t.transaction_status IN ('failed', 'timeout', 'cancelled') THEN 1 END) AS failed_transactions,
			COUNT(DISTINCT t.session_id) AS peak_concurrent_users
		FROM ussd_transactions t
		LEFT JOIN ussd_sessions s ON t.session_id = s.session_id
		WHERE t.transaction_timestamp >= $2
		%s
		GROUP BY time_bucket
		ORDER BY time_bucket ASC
	`, clause)

	args := append([]interface{}{string(granularity), windowStart}, predArgs...)
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []models.VolumeRow
	for rows.Next() {
		var row models.VolumeRow
		var revenue sql.NullString
		if err := rows.Scan(
			&row.Bucket,
			&row.Total,
			&row.Electricity,
			&row.Water,
			&row.Airtime,
			&row.MobileMoney,
			&row.Banking,
			&row.AvgSessionSeconds,
			&row.SuccessRatePct,
			&revenue,
			&row.FailedTransactions,
			&row.PeakConcurrentUsers,
		); err != nil {
			return nil, err
		}
		if row.Revenue, err = parseDecimal(revenue); err != nil {
			return nil, err
		}
		series = append(series, row)
	}
	return series, rows.Err()
}

// GeneralMetrics summarizes transactions with a resolvable session in the
// window. The INNER JOIN is deliberate: this KPI is about engaged
// sessions, so orphaned transactions are excluded.
func (r *AnalyticsRepository) GeneralMetrics(ctx context.Context, windowStart time.Time) (models.GeneralMetricsRow, error) {
	const stmt = `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN t.transaction_status = 'success' THEN 1 ELSE 0 END), 0) AS successful,
			COALESCE(SUM(CASE WHEN t.transaction_status != 'success' THEN 1 ELSE 0 END), 0) AS failed,
			COALESCE((SUM(CASE WHEN t.transaction_status = 'success' THEN 1 ELSE 0 END)::FLOAT / NULLIF(COUNT(*), 0)) * 100, 0) AS success_rate
		FROM ussd_transactions t
		INNER JOIN ussd_sessions s ON t.session_id = s.session_id
		WHERE t.transaction_timestamp >= $1
	`
	var m models.GeneralMetricsRow
	err := r.db.QueryRowContext(ctx, stmt, windowStart).Scan(&m.Total, &m.Successful, &m.Failed, &m.SuccessRatePct)
	return m, err
}

// ActiveSessionCount counts sessions still open that started within the
// recency window. Independent of the caller-supplied range.
func (r *AnalyticsRepository) ActiveSessionCount(ctx context.Context) (int64, error) {
	const stmt = `
		SELECT COUNT(*)
		FROM ussd_sessions
		WHERE session_end IS NULL
		  AND session_start >= NOW() - INTERVAL '` + activeSessionRecency + `'
	`
	var count int64
	err := r.db.QueryRowContext(ctx, stmt).Scan(&count)
	return count, err
}

// PeakHour returns the busiest hour of day in the window. ok is false
// when the window holds no transactions.
func (r *AnalyticsRepository) PeakHour(ctx context.Context, windowStart time.Time) (models.HourCount, bool, error) {
	const stmt = `
		SELECT EXTRACT(HOUR FROM transaction_timestamp)::INT AS hour, COUNT(*) AS count
		FROM ussd_transactions
		WHERE transaction_timestamp >= $1
		GROUP BY hour
		ORDER BY count DESC
		LIMIT 1
	`
	var hc models.HourCount
	err := r.db.QueryRowContext(ctx, stmt, windowStart).Scan(&hc.Hour, &hc.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HourCount{}, false, nil
	}
	if err != nil {
		return models.HourCount{}, false, err
	}
	return hc, true, nil
}

// TopProvince returns the province with the most session starts in the
// window, if any.
func (r *AnalyticsRepository) TopProvince(ctx context.Context, windowStart time.Time) (models.KeyCount, bool, error) {
	const stmt = `
		SELECT COALESCE(province, 'Unknown') AS province, COUNT(*) AS count
		FROM ussd_sessions
		WHERE session_start >= $1
		GROUP BY province
		ORDER BY count DESC
		LIMIT 1
	`
	var kc models.KeyCount
	err := r.db.QueryRowContext(ctx, stmt, windowStart).Scan(&kc.Key, &kc.Count)
	if errors.Is(err, sql.ErrNoRows) {
		return models.KeyCount{}, false, nil
	}
	if err != nil {
		return models.KeyCount{}, false, err
	}
	return kc, true, nil
}

// AverageSessionDuration returns the mean session duration in seconds
// for sessions started within the window.
func (r *AnalyticsRepository) AverageSessionDuration(ctx context.Context, windowStart time.Time) (float64, error) {
	const stmt = `
		SELECT COALESCE(AVG(session_duration), 0)::FLOAT
		FROM ussd_sessions
		WHERE session_start >= $1
	`
	var avg float64
	err := r.db.QueryRowContext(ctx, stmt, windowStart).Scan(&avg)
	return avg, err
}

// PreviousPeriodCount counts transactions strictly inside the previous
// period [previousStart, currentStart).
func (r *AnalyticsRepository) PreviousPeriodCount(ctx context.Context, previousStart, currentStart time.Time) (int64, error) {
	const stmt = `
		SELECT COUNT(*)
		FROM ussd_transactions
		WHERE transaction_timestamp >= $1
		  AND transaction_timestamp < $2
	`
	var count int64
	err := r.db.QueryRowContext(ctx, stmt, previousStart, currentStart).Scan(&count)
	return count, err
}

// NetworkBreakdown returns per-network totals and success rates for the
// window. Requires a session to resolve the network, hence INNER JOIN.
func (r *AnalyticsRepository) NetworkBreakdown(ctx context.Context, windowStart time.Time) ([]models.NetworkRow, error) {
	const stmt = `
		SELECT
			COALESCE(s.network_provider, 'Unknown') AS name,
			COUNT(*) AS total,
			COALESCE((SUM(CASE WHEN t.transaction_status = 'success' THEN 1 ELSE 0 END)::FLOAT / NULLIF(COUNT(*), 0)) * 100, 0) AS success_rate
		FROM ussd_transactions t
		INNER JOIN ussd_sessions s ON t.session_id = s.session_id
		WHERE t.transaction_timestamp >= $1
		GROUP BY s.network_provider
	`
	rows, err := r.db.QueryContext(ctx, stmt, windowStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var networks []models.NetworkRow
	for rows.Next() {
		var n models.NetworkRow
		if err := rows.Scan(&n.Name, &n.Total, &n.SuccessRatePct); err != nil {
			return nil, err
		}
		networks = append(networks, n)
	}
	return networks, rows.Err()
}

// RevenueTrends returns daily revenue for successful transactions only,
// pivoted by service grouping, ascending by day.
func (r *AnalyticsRepository) RevenueTrends(ctx context.Context, windowStart time.Time) ([]models.RevenueRow, error) {
	const stmt = `
		SELECT
			DATE_TRUNC('day', transaction_timestamp) AS date,
			COALESCE(SUM(CASE WHEN transaction_type = 'electricity_token' THEN transaction_amount ELSE 0 END), 0)::TEXT AS electricity,
			COALESCE(SUM(CASE WHEN transaction_type = 'water_bill_payment' THEN transaction_amount ELSE 0 END), 0)::TEXT AS water,
			COALESCE(SUM(CASE WHEN transaction_type = 'airtime_purchase' THEN transaction_amount ELSE 0 END), 0)::TEXT AS airtime,
			COALESCE(SUM(CASE WHEN transaction_type IN ('money_transfer', 'bill_payment') THEN transaction_amount ELSE 0 END), 0)::TEXT AS mobile_money,
			COALESCE(SUM(transaction_amount), 0)::TEXT AS total
		FROM ussd_transactions
		WHERE transaction_status = 'success'
		  AND transaction_timestamp >= $1
		GROUP BY date
		ORDER BY date ASC
	`
	rows, err := r.db.QueryContext(ctx, stmt, windowStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []models.RevenueRow
	for rows.Next() {
		var row models.RevenueRow
		var electricity, water, airtime, mobileMoney, total sql.NullString
		if err := rows.Scan(&row.Date, &electricity, &water, &airtime, &mobileMoney, &total); err != nil {
			return nil, err
		}
		if row.Electricity, err = parseDecimal(electricity); err != nil {
			return nil, err
		}
		if row.Water, err = parseDecimal(water); err != nil {
			return nil, err
		}
		if row.Airtime, err = parseDecimal(airtime); err != nil {
			return nil, err
		}
		if row.MobileMoney, err = parseDecimal(mobileMoney); err != nil {
			return nil, err
		}
		if row.Total, err = parseDecimal(total); err != nil {
			return nil, err
		}
		trends = append(trends, row)
	}
	return trends, rows.Err()
}

// UniqueUserCount counts distinct subscribers across all sessions.
func (r *AnalyticsRepository) UniqueUserCount(ctx context.Context) (int64, error) {
	const stmt = `SELECT COUNT(DISTINCT msisdn) FROM ussd_sessions`
	var count int64
	err := r.db.QueryRowContext(ctx, stmt).Scan(&count)
	return count, err
}

// DistributionBy returns distinct-user counts grouped by province or
// network provider, descending by users.
func (r *AnalyticsRepository) DistributionBy(ctx context.Context, dim Dimension) ([]models.KeyCount, error) {
	var column string
	switch dim {
	case DimensionProvince:
		column = "province"
	case DimensionNetwork:
		column = "network_provider"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, dim)
	}

	stmt := fmt.Sprintf(`
		SELECT COALESCE(%s, 'Unknown') AS key, COUNT(DISTINCT msisdn) AS users
		FROM ussd_sessions
		GROUP BY %s
		ORDER BY users DESC
	`, column, column)

	rows, err := r.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dist []models.KeyCount
	for rows.Next() {
		var kc models.KeyCount
		if err := rows.Scan(&kc.Key, &kc.Count); err != nil {
			return nil, err
		}
		dist = append(dist, kc)
	}
	return dist, rows.Err()
}

// RawHourlyCounts returns transaction counts per (day of week, hour of
// day) over the fixed 30-day baseline. Postgres DOW: 0=Sunday.
func (r *AnalyticsRepository) RawHourlyCounts(ctx context.Context) ([]models.HourlyCount, error) {
	const stmt = `
		SELECT
			EXTRACT(DOW FROM transaction_timestamp)::INT AS day_index,
			EXTRACT(HOUR FROM transaction_timestamp)::INT AS hour_index,
			COUNT(*) AS count
		FROM ussd_transactions
		WHERE transaction_timestamp >= NOW() - INTERVAL '` + rawHourlyLookback + `'
		GROUP BY day_index, hour_index
	`
	rows, err := r.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.HourlyCount
	for rows.Next() {
		var hc models.HourlyCount
		if err := rows.Scan(&hc.DayOfWeek, &hc.HourOfDay, &hc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, hc)
	}
	return counts, rows.Err()
}
