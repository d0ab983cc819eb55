package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/zedpay/ussd-analytics/internal/config"
	"github.com/zedpay/ussd-analytics/internal/httpapi"
	"github.com/zedpay/ussd-analytics/internal/httpapi/handlers"
	"github.com/zedpay/ussd-analytics/internal/observability"
	platformdb "github.com/zedpay/ussd-analytics/internal/platform/db"
	"github.com/zedpay/ussd-analytics/internal/repository"
	"github.com/zedpay/ussd-analytics/internal/service"
)

// App wires the analytics API dependency graph.
type App struct {
	server *httpapi.Server
	db     *sql.DB
	logger *zap.Logger
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := platformdb.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	analyticsRepo := repository.NewAnalyticsRepository(sqlDB)
	transactionRepo := repository.NewTransactionRepository(sqlDB)
	analytics := service.NewAnalyticsService(analyticsRepo, transactionRepo, cfg.QueryTimeout(), logger)

	metrics := observability.NewMetrics("ussd_analytics")

	router := httpapi.NewRouter(
		httpapi.Handlers{
			Transaction:  handlers.NewTransactionHandler(analytics, logger),
			Volume:       handlers.NewVolumeHandler(analytics, logger),
			SuccessRate:  handlers.NewSuccessRateHandler(analytics, logger),
			Revenue:      handlers.NewRevenueHandler(analytics, logger),
			Demographics: handlers.NewDemographicsHandler(analytics, logger),
			PeakHours:    handlers.NewPeakHoursHandler(analytics, logger),
			Health:       handlers.NewHealthHandler(sqlDB),
		},
		httpapi.Recover(logger),
		httpapi.RequestID(),
		httpapi.AccessLog(logger),
		httpapi.Observe(metrics),
	)

	server := httpapi.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts the HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
