package handlers

import (
	"encoding/json"
	"net/http"
)

// genericErrorMsg is what clients see for storage and other internal
// failures; the detail stays in the server log.
const genericErrorMsg = "An unexpected error occurred. Please try again later."

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
