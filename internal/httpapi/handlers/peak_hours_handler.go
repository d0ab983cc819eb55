package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// NewPeakHoursHandler returns GET /peak-hours: the flat 84-cell weekly
// heatmap over the fixed 30-day baseline.
func NewPeakHoursHandler(svc Analytics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cells, err := svc.PeakHours(r.Context())
		if err != nil {
			logger.Error("peak hours failed", zap.Error(err))
			writeFailure(w, http.StatusInternalServerError, msgUpstreamFailure)
			return
		}

		writeSuccess(w, cells)
	}
}
