package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON renders a response body; an encode failure after the status
// line has gone out can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response failed: method=%s path=%s status=%d err=%v",
			r.Method, r.URL.Path, status, err)
	}
}

// writeError renders the uniform error envelope used by every endpoint.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}
