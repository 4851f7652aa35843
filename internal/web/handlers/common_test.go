package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/content-planner/internal/ai"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &ai.Error{Kind: ai.KindValidation, Message: "bad input"}, http.StatusBadRequest},
		{"config", &ai.Error{Kind: ai.KindConfig, Message: "missing key"}, http.StatusInternalServerError},
		{"auth", &ai.Error{Kind: ai.KindAuth, Message: "invalid key"}, http.StatusBadGateway},
		{"service", &ai.Error{Kind: ai.KindService, Message: "model error"}, http.StatusBadGateway},
		{"transient", &ai.Error{Kind: ai.KindTransient, Message: "rate limited"}, http.StatusServiceUnavailable},
		{"plain error counts as service", errors.New("boom"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSanitizeForLog(t *testing.T) {
	got := sanitizeForLog("line1\nline2\rline3")
	if got != "line1line2line3" {
		t.Errorf("unexpected sanitized string: %q", got)
	}
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assertStatusCode(t, rec, http.StatusOK)

	var resp map[string]string
	parseJSONResponse(t, rec, &resp)
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}
