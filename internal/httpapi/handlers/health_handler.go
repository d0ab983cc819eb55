package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger checks store reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns GET /health with a live store probe.
func NewHealthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.PingContext(ctx); err != nil {
			writeFailure(w, http.StatusInternalServerError, "database unreachable")
			return
		}
		writeSuccess(w, map[string]string{"status": "ok", "database": "up"})
	}
}
