package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kozaktomas/content-planner/internal/ai"
)

// errInvalidRequestBody is a shared error message for invalid JSON request bodies.
const errInvalidRequestBody = "invalid request body"

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps the error taxonomy to HTTP status codes. Everything is
// caught here; nothing propagates past the handler boundary.
func statusForError(err error) int {
	switch ai.KindOf(err) {
	case ai.KindValidation:
		return http.StatusBadRequest
	case ai.KindConfig:
		return http.StatusInternalServerError
	case ai.KindAuth, ai.KindService:
		return http.StatusBadGateway
	case ai.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
