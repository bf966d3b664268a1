// ABOUTME: JSON response envelope for the inline column update endpoint.
// ABOUTME: Keeps success and error payloads in one consistent shape.

package admin

import (
	"encoding/json"
	"net/http"
)

// envelope is the response shape of the column update endpoint:
// {"success": bool, "data": {"value": ..., "message": ...}}.
type envelope struct {
	Success bool         `json:"success"`
	Data    envelopeData `json:"data"`
}

type envelopeData struct {
	Value   string `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Data: envelopeData{Message: message}})
}
