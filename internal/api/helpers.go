package api

import (
	"encoding/json"
	"net/http"

	"carnav-core/internal/apperr"
)

// writeJSON writes a 200 JSON response.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeText writes a terse plain-text status body. Non-success responses
// always carry plain text, never JSON.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

// writeErr maps err to its HTTP status via apperr and writes the terse
// plain-text body.
func writeErr(w http.ResponseWriter, err error) {
	writeText(w, apperr.StatusOf(err), err.Error())
}
