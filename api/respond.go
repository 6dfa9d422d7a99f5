package api

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// errorResponse is the wire shape of every JSON error
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeInternalError logs the full error server-side and returns a
// generic message to the caller
func writeInternalError(w http.ResponseWriter, err error) {
	log.WithError(err).Error("Request failed")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
