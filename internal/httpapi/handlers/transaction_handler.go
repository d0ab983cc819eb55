package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/zedpay/ussd-analytics/internal/repository"
)

// NewTransactionHandler returns GET /transaction/{transaction_id}.
func NewTransactionHandler(svc Analytics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID := strings.TrimSpace(mux.Vars(r)["transaction_id"])
		if transactionID == "" {
			writeFailure(w, http.StatusBadRequest, msgMissingTransactionID)
			return
		}

		txn, err := svc.Transaction(r.Context(), transactionID)
		if errors.Is(err, repository.ErrTransactionNotFound) {
			writeFailure(w, http.StatusNotFound, msgTransactionNotFound)
			return
		}
		if err != nil {
			logger.Error("transaction lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
			writeFailure(w, http.StatusInternalServerError, msgUpstreamFailure)
			return
		}

		writeSuccess(w, txn)
	}
}
