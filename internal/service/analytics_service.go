package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zedpay/ussd-analytics/internal/dashboard"
	"github.com/zedpay/ussd-analytics/internal/models"
	"github.com/zedpay/ussd-analytics/internal/query"
	"github.com/zedpay/ussd-analytics/internal/repository"
)

// AnalyticsStore is what the service needs from the aggregate query
// layer. Satisfied by *repository.AnalyticsRepository; faked in tests.
type AnalyticsStore interface {
	VolumeByBucket(ctx context.Context, windowStart time.Time, granularity query.Granularity, predicate query.Predicate) ([]models.VolumeRow, error)
	GeneralMetrics(ctx context.Context, windowStart time.Time) (models.GeneralMetricsRow, error)
	ActiveSessionCount(ctx context.Context) (int64, error)
	PeakHour(ctx context.Context, windowStart time.Time) (models.HourCount, bool, error)
	TopProvince(ctx context.Context, windowStart time.Time) (models.KeyCount, bool, error)
	AverageSessionDuration(ctx context.Context, windowStart time.Time) (float64, error)
	PreviousPeriodCount(ctx context.Context, previousStart, currentStart time.Time) (int64, error)
	NetworkBreakdown(ctx context.Context, windowStart time.Time) ([]models.NetworkRow, error)
	RevenueTrends(ctx context.Context, windowStart time.Time) ([]models.RevenueRow, error)
	UniqueUserCount(ctx context.Context) (int64, error)
	DistributionBy(ctx context.Context, dim repository.Dimension) ([]models.KeyCount, error)
	RawHourlyCounts(ctx context.Context) ([]models.HourlyCount, error)
}

// TransactionStore reads single transactions.
type TransactionStore interface {
	GetByID(ctx context.Context, transactionID string) (*models.Transaction, error)
}

// AnalyticsService orchestrates aggregate queries and derived metrics
// into endpoint payloads.
type AnalyticsService struct {
	store        AnalyticsStore
	transactions TransactionStore
	queryTimeout time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

// NewAnalyticsService constructs the service. queryTimeout bounds all
// queries issued for one request, including fan-out branches.
func NewAnalyticsService(store AnalyticsStore, transactions TransactionStore, queryTimeout time.Duration, logger *zap.Logger) *AnalyticsService {
	if queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}
	return &AnalyticsService{
		store:        store,
		transactions: transactions,
		queryTimeout: queryTimeout,
		logger:       logger,
		now:          time.Now,
	}
}

// Transaction fetches a single ledger record by primary key.
func (s *AnalyticsService) Transaction(ctx context.Context, transactionID string) (*TransactionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	txn, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return newTransactionRecord(txn), nil
}

// Volume returns the bucketed volume series for the resolved range and
// service tokens.
func (s *AnalyticsService) Volume(ctx context.Context, rng query.Range, svc query.Service) ([]VolumePoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	now := s.now()
	granularity := rng.Granularity()
	rows, err := s.store.VolumeByBucket(ctx, rng.WindowStart(now), granularity, svc.Predicate())
	if err != nil {
		return nil, fmt.Errorf("volume series: %w", err)
	}

	points := make([]VolumePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, VolumePoint{
			Time:                dashboard.BucketLabel(row.Bucket, granularity),
			Total:               row.Total,
			Electricity:         row.Electricity,
			Water:               row.Water,
			Airtime:             row.Airtime,
			MobileMoney:         row.MobileMoney,
			Banking:             row.Banking,
			AvgSessionTime:      dashboard.Round1(row.AvgSessionSeconds),
			SuccessRate:         dashboard.Round1(row.SuccessRatePct),
			Revenue:             row.Revenue.InexactFloat64(),
			FailedTransactions:  row.FailedTransactions,
			PeakConcurrentUsers: row.PeakConcurrentUsers,
		})
	}
	return points, nil
}

// GaugeStats assembles the success-rate KPI payload. The underlying
// aggregates are independent, so all branches run concurrently under one
// bounded context; the first failure cancels the rest and fails the
// request (a gauge snapshot with missing needles is worse than a 500).
func (s *AnalyticsService) GaugeStats(ctx context.Context, rng query.Range) (*GaugeStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	now := s.now()
	windowStart := rng.WindowStart(now)
	previousStart, _ := rng.PreviousWindow(now)

	var (
		general       models.GeneralMetricsRow
		activeCount   int64
		peak          models.HourCount
		peakOK        bool
		topProvince   models.KeyCount
		topProvinceOK bool
		avgDuration   float64
		previousCount int64
		networks      []models.NetworkRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		general, err = s.store.GeneralMetrics(gctx, windowStart)
		return err
	})
	g.Go(func() (err error) {
		activeCount, err = s.store.ActiveSessionCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		peak, peakOK, err = s.store.PeakHour(gctx, windowStart)
		return err
	})
	g.Go(func() (err error) {
		topProvince, topProvinceOK, err = s.store.TopProvince(gctx, windowStart)
		return err
	})
	g.Go(func() (err error) {
		avgDuration, err = s.store.AverageSessionDuration(gctx, windowStart)
		return err
	})
	g.Go(func() (err error) {
		previousCount, err = s.store.PreviousPeriodCount(gctx, previousStart, windowStart)
		return err
	})
	g.Go(func() (err error) {
		networks, err = s.store.NetworkBreakdown(gctx, windowStart)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gauge stats: %w", err)
	}

	province := topProvince.Key
	if !topProvinceOK {
		province = "N/A"
	}

	return &GaugeStats{
		Metrics: GaugeMetrics{
			SuccessRate:     dashboard.Round1(general.SuccessRatePct),
			SuccessfulTxns:  general.Successful,
			FailedTxns:      general.Failed,
			AvgResponseTime: dashboard.Round1(avgDuration),
			ActiveSessions:  activeCount,
			TopProvince:     province,
			Trend:           dashboard.TrendPercent(general.Total, previousCount),
			PeakHour:        dashboard.PeakHourLabel(peak.Hour, peakOK),
		},
		Networks: dashboard.MarketShares(networks),
	}, nil
}

// Revenue returns the daily revenue trend for the resolved range.
func (s *AnalyticsService) Revenue(ctx context.Context, rng query.Range) ([]RevenuePoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rows, err := s.store.RevenueTrends(ctx, rng.WindowStart(s.now()))
	if err != nil {
		return nil, fmt.Errorf("revenue trends: %w", err)
	}

	points := make([]RevenuePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, RevenuePoint{
			Date:        dashboard.BucketLabel(row.Date, query.GranularityDay),
			Electricity: row.Electricity.InexactFloat64(),
			Water:       row.Water.InexactFloat64(),
			Airtime:     row.Airtime.InexactFloat64(),
			MobileMoney: row.MobileMoney.InexactFloat64(),
			Total:       row.Total.InexactFloat64(),
		})
	}
	return points, nil
}

// Demographics assembles the user demographics payload. The four
// underlying queries fan out like gauge stats.
func (s *AnalyticsService) Demographics(ctx context.Context) (*Demographics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		totalUsers int64
		provinces  []models.KeyCount
		networks   []models.KeyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalUsers, err = s.store.UniqueUserCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		provinces, err = s.store.DistributionBy(gctx, repository.DimensionProvince)
		return err
	})
	g.Go(func() (err error) {
		networks, err = s.store.DistributionBy(gctx, repository.DimensionNetwork)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("demographics: %w", err)
	}

	networkData := make([]NetworkUsers, 0, len(networks))
	for _, n := range networks {
		networkData = append(networkData, NetworkUsers{Network: n.Key, Users: n.Count})
	}

	return &Demographics{
		TotalUsers:     totalUsers,
		ProvinceData:   dashboard.GroupProvinces(provinces, dashboard.DefaultTopProvinces),
		NetworkData:    networkData,
		AgeGroups:      dashboard.ProjectAgeGroups(totalUsers),
		GenderData:     dashboard.ProjectGenders(totalUsers),
		UrbanRuralData: dashboard.ProjectUrbanRural(totalUsers),
		DeviceData:     dashboard.ProjectDevices(totalUsers),
	}, nil
}

// PeakHours returns the 84-cell weekly heatmap over the fixed 30-day
// baseline.
func (s *AnalyticsService) PeakHours(ctx context.Context) ([]dashboard.HeatmapCell, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	raw, err := s.store.RawHourlyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("peak hours: %w", err)
	}
	return dashboard.BuildHeatmap(raw), nil
}
