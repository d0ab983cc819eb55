package handlers

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper. The HTTP status always
// mirrors Code, so clients can rely on either.
type Envelope struct {
	Code    int         `json:"code"`
	Success bool        `json:"success"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, payload interface{}) {
	writeEnvelope(w, Envelope{Code: http.StatusOK, Success: true, Payload: payload})
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, Envelope{Code: code, Success: false, Error: message})
}

func writeEnvelope(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.Code)
	_ = json.NewEncoder(w).Encode(env)
}
