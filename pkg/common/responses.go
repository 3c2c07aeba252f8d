package common

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// HealthResponse is the body of liveness/readiness probes
type HealthResponse struct {
	Status string `json:"status"`
}

// InfoResponse is the body of the root API info endpoint
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
