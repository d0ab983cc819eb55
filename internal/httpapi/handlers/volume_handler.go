package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/zedpay/ussd-analytics/internal/query"
)

// NewVolumeHandler returns GET /transactions/volume/{range}/{service}.
// Unrecognized tokens degrade to 7d/all rather than erroring.
func NewVolumeHandler(svc Analytics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		rng := query.ParseRelativeRange(vars["range"], query.Range7d)
		category := query.ParseService(vars["service"])

		points, err := svc.Volume(r.Context(), rng, category)
		if err != nil {
			logger.Error("volume query failed", zap.String("range", string(rng)), zap.Error(err))
			writeFailure(w, http.StatusInternalServerError, msgUpstreamFailure)
			return
		}

		writeSuccess(w, points)
	}
}
