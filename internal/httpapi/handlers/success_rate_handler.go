package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/zedpay/ussd-analytics/internal/query"
)

// NewSuccessRateHandler returns GET /transactions/success-rate/{range}.
// The range may also arrive as a query parameter; either way unknown
// tokens resolve to 30d.
func NewSuccessRateHandler(svc Analytics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := mux.Vars(r)["range"]
		if raw == "" {
			raw = r.URL.Query().Get("range")
		}
		rng := query.ParseRelativeRange(raw, query.Range30d)

		stats, err := svc.GaugeStats(r.Context(), rng)
		if err != nil {
			logger.Error("gauge stats failed", zap.String("range", string(rng)), zap.Error(err))
			writeFailure(w, http.StatusInternalServerError, msgUpstreamFailure)
			return
		}

		writeSuccess(w, stats)
	}
}
