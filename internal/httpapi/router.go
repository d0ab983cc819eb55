package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the endpoint handlers for the route table.
type Handlers struct {
	Transaction  http.HandlerFunc
	Volume       http.HandlerFunc
	SuccessRate  http.HandlerFunc
	Revenue      http.HandlerFunc
	Demographics http.HandlerFunc
	PeakHours    http.HandlerFunc
	Health       http.HandlerFunc
}

// NewRouter declares the route table statically at startup. All API
// endpoints are GET and mount under /api/v1.
func NewRouter(h Handlers, middleware ...mux.MiddlewareFunc) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware...)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/transaction/{transaction_id}", h.Transaction).Methods(http.MethodGet)
	// A bare /transaction reaches the handler so a missing id maps to 400
	// rather than the router's generic 404.
	api.HandleFunc("/transaction", h.Transaction).Methods(http.MethodGet)
	api.HandleFunc("/transaction/", h.Transaction).Methods(http.MethodGet)
	api.HandleFunc("/transactions/volume/{range}/{service}", h.Volume).Methods(http.MethodGet)
	api.HandleFunc("/transactions/success-rate/{range}", h.SuccessRate).Methods(http.MethodGet)
	// Range may also arrive as ?range= when the path segment is omitted.
	api.HandleFunc("/transactions/success-rate", h.SuccessRate).Methods(http.MethodGet)
	api.HandleFunc("/revenue/trends/{range}", h.Revenue).Methods(http.MethodGet)
	api.HandleFunc("/users/demographics", h.Demographics).Methods(http.MethodGet)
	api.HandleFunc("/peak-hours", h.PeakHours).Methods(http.MethodGet)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
