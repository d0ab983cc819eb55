package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zedpay/ussd-analytics/internal/dashboard"
	"github.com/zedpay/ussd-analytics/internal/httpapi"
	"github.com/zedpay/ussd-analytics/internal/httpapi/handlers"
	"github.com/zedpay/ussd-analytics/internal/query"
	"github.com/zedpay/ussd-analytics/internal/repository"
	"github.com/zedpay/ussd-analytics/internal/service"
)

type fakeAnalytics struct {
	txn       *service.TransactionRecord
	txnErr    error
	lastRange query.Range
	lastSvc   query.Service
	gauge     *service.GaugeStats
	gaugeErr  error
	volume    []service.VolumePoint
	revenue   []service.RevenuePoint
	demo      *service.Demographics
	cells     []dashboard.HeatmapCell
}

func (f *fakeAnalytics) Transaction(ctx context.Context, id string) (*service.TransactionRecord, error) {
	return f.txn, f.txnErr
}

func (f *fakeAnalytics) Volume(ctx context.Context, rng query.Range, svc query.Service) ([]service.VolumePoint, error) {
	f.lastRange, f.lastSvc = rng, svc
	return f.volume, nil
}

func (f *fakeAnalytics) GaugeStats(ctx context.Context, rng query.Range) (*service.GaugeStats, error) {
	f.lastRange = rng
	return f.gauge, f.gaugeErr
}

func (f *fakeAnalytics) Revenue(ctx context.Context, rng query.Range) ([]service.RevenuePoint, error) {
	f.lastRange = rng
	return f.revenue, nil
}

func (f *fakeAnalytics) Demographics(ctx context.Context) (*service.Demographics, error) {
	return f.demo, nil
}

func (f *fakeAnalytics) PeakHours(ctx context.Context) ([]dashboard.HeatmapCell, error) {
	return f.cells, nil
}

type okPinger struct{}

func (okPinger) PingContext(ctx context.Context) error { return nil }

func newTestRouter(fake *fakeAnalytics) http.Handler {
	logger := zap.NewNop()
	return httpapi.NewRouter(httpapi.Handlers{
		Transaction:  handlers.NewTransactionHandler(fake, logger),
		Volume:       handlers.NewVolumeHandler(fake, logger),
		SuccessRate:  handlers.NewSuccessRateHandler(fake, logger),
		Revenue:      handlers.NewRevenueHandler(fake, logger),
		Demographics: handlers.NewDemographicsHandler(fake, logger),
		PeakHours:    handlers.NewPeakHoursHandler(fake, logger),
		Health:       handlers.NewHealthHandler(okPinger{}),
	})
}

func doRequest(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, handlers.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env handlers.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	// HTTP status always mirrors the envelope code.
	assert.Equal(t, env.Code, rec.Code)
	return rec, env
}

func TestTransactionFound(t *testing.T) {
	fake := &fakeAnalytics{txn: &service.TransactionRecord{TransactionID: "TXN-1", UssdString: "*303#"}}
	router := newTestRouter(fake)

	rec, env := doRequest(t, router, "/api/v1/transaction/TXN-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotNil(t, env.Payload)
	assert.Empty(t, env.Error)
}

func TestTransactionNotFound(t *testing.T) {
	fake := &fakeAnalytics{txnErr: repository.ErrTransactionNotFound}
	router := newTestRouter(fake)

	rec, env := doRequest(t, router, "/api/v1/transaction/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "transaction not found", env.Error)
}

func TestTransactionMissingID(t *testing.T) {
	router := newTestRouter(&fakeAnalytics{})

	rec, env := doRequest(t, router, "/api/v1/transaction")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "missing transaction id", env.Error)
}

func TestTransactionUpstreamError(t *testing.T) {
	fake := &fakeAnalytics{txnErr: errors.New("dial tcp: connection refused")}
	router := newTestRouter(fake)

	rec, env := doRequest(t, router, "/api/v1/transaction/TXN-1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internals never leak to the client.
	assert.Equal(t, "upstream query failed", env.Error)
}

func TestVolumeDegradesBadTokensToDefaults(t *testing.T) {
	fake := &fakeAnalytics{}
	router := newTestRouter(fake)

	rec, env := doRequest(t, router, "/api/v1/transactions/volume/banana/crypto")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, query.Range7d, fake.lastRange)
	assert.Equal(t, query.ServiceAll, fake.lastSvc)
}

func TestYTDOnlyAppliesToRevenue(t *testing.T) {
	fake := &fakeAnalytics{gauge: &service.GaugeStats{}}
	router := newTestRouter(fake)

	// The calendar-year token degrades like any unknown token outside the
	// revenue trend.
	_, env := doRequest(t, router, "/api/v1/transactions/volume/ytd/all")
	assert.True(t, env.Success)
	assert.Equal(t, query.Range7d, fake.lastRange)

	_, env = doRequest(t, router, "/api/v1/transactions/success-rate/ytd")
	assert.True(t, env.Success)
	assert.Equal(t, query.Range30d, fake.lastRange)
}

func TestSuccessRateDefaultsTo30d(t *testing.T) {
	fake := &fakeAnalytics{gauge: &service.GaugeStats{}}
	router := newTestRouter(fake)

	_, env := doRequest(t, router, "/api/v1/transactions/success-rate")
	assert.True(t, env.Success)
	assert.Equal(t, query.Range30d, fake.lastRange)
}

func TestSuccessRateQueryParam(t *testing.T) {
	fake := &fakeAnalytics{gauge: &service.GaugeStats{}}
	router := newTestRouter(fake)

	_, _ = doRequest(t, router, "/api/v1/transactions/success-rate?range=24h")
	assert.Equal(t, query.Range24h, fake.lastRange)
}

func TestSuccessRateFanOutFailureIsSingle500(t *testing.T) {
	fake := &fakeAnalytics{gaugeErr: errors.New("one branch timed out")}
	router := newTestRouter(fake)

	rec, env := doRequest(t, router, "/api/v1/transactions/success-rate/30d")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "upstream query failed", env.Error)
}

func TestRevenueHonorsYTD(t *testing.T) {
	fake := &fakeAnalytics{}
	router := newTestRouter(fake)

	_, env := doRequest(t, router, "/api/v1/revenue/trends/ytd")
	assert.True(t, env.Success)
	assert.Equal(t, query.RangeYTD, fake.lastRange)
}

func TestPeakHoursPayload(t *testing.T) {
	fake := &fakeAnalytics{cells: dashboard.BuildHeatmap(nil)}
	router := newTestRouter(fake)

	rec, env := doRequest(t, router, "/api/v1/peak-hours")
	assert.Equal(t, http.StatusOK, rec.Code)

	cells, ok := env.Payload.([]interface{})
	require.True(t, ok)
	assert.Len(t, cells, 84)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeAnalytics{})

	rec, env := doRequest(t, router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

type downPinger struct{}

func (downPinger) PingContext(ctx context.Context) error {
	return errors.New("dial tcp: connection refused")
}

func TestHealthDatabaseDown(t *testing.T) {
	router := httpapi.NewRouter(httpapi.Handlers{
		Health: handlers.NewHealthHandler(downPinger{}),
	})

	rec, env := doRequest(t, router, "/health")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "database unreachable", env.Error)
	// A failure envelope carries an error, never a payload.
	assert.Nil(t, env.Payload)
}
