package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/zedpay/ussd-analytics/internal/query"
)

// NewRevenueHandler returns GET /revenue/trends/{range}. This is the only
// endpoint that honors "ytd".
func NewRevenueHandler(svc Analytics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng := query.ParseRange(mux.Vars(r)["range"], query.Range7d)

		points, err := svc.Revenue(r.Context(), rng)
		if err != nil {
			logger.Error("revenue trends failed", zap.String("range", string(rng)), zap.Error(err))
			writeFailure(w, http.StatusInternalServerError, msgUpstreamFailure)
			return
		}

		writeSuccess(w, points)
	}
}
