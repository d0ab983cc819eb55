package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// NewDemographicsHandler returns GET /users/demographics.
func NewDemographicsHandler(svc Analytics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		demographics, err := svc.Demographics(r.Context())
		if err != nil {
			logger.Error("demographics failed", zap.Error(err))
			writeFailure(w, http.StatusInternalServerError, msgUpstreamFailure)
			return
		}

		writeSuccess(w, demographics)
	}
}
