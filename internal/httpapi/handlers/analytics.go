package handlers

import (
	"context"

	"github.com/zedpay/ussd-analytics/internal/dashboard"
	"github.com/zedpay/ussd-analytics/internal/query"
	"github.com/zedpay/ussd-analytics/internal/service"
)

// Analytics is what the handlers need from the service layer. Satisfied
// by *service.AnalyticsService; faked in tests.
type Analytics interface {
	Transaction(ctx context.Context, transactionID string) (*service.TransactionRecord, error)
	Volume(ctx context.Context, rng query.Range, svc query.Service) ([]service.VolumePoint, error)
	GaugeStats(ctx context.Context, rng query.Range) (*service.GaugeStats, error)
	Revenue(ctx context.Context, rng query.Range) ([]service.RevenuePoint, error)
	Demographics(ctx context.Context) (*service.Demographics, error)
	PeakHours(ctx context.Context) ([]dashboard.HeatmapCell, error)
}

// Stable client-facing error strings. Internals stay in the logs.
const (
	msgMissingTransactionID = "missing transaction id"
	msgTransactionNotFound  = "transaction not found"
	msgUpstreamFailure      = "upstream query failed"
)
