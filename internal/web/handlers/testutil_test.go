package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/content-planner/internal/ai"
	"github.com/kozaktomas/content-planner/internal/config"
	"github.com/kozaktomas/content-planner/internal/constants"
	"github.com/kozaktomas/content-planner/internal/planner"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{APIKey: "test-key"},
		Planner: config.PlannerConfig{
			DefaultProvider: constants.ProviderGemini,
			Language:        "English",
		},
		Models: config.ModelsConfig{
			Models: map[string]config.ModelSettings{
				ai.GeminiModel: {
					Temperature:     0.7,
					MaxOutputTokens: 4096,
					Pricing:         config.RequestPricing{Input: 0.30, Output: 2.50},
				},
			},
		},
	}
}

// stubProvider is a canned ai.Provider for handler tests.
type stubProvider struct {
	name     string
	response string
	err      error
	usage    ai.Usage
	calls    int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(ctx context.Context, prompt string, opts ai.GenerateOptions) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *stubProvider) GetUsage() *ai.Usage { return &p.usage }
func (p *stubProvider) ResetUsage()         { p.usage = ai.Usage{} }

// newTestGenerateHandler wires a generate handler to a stub provider.
func newTestGenerateHandler(provider ai.Provider) (*GenerateHandler, *Dashboard, *planner.History, *planner.TemplateStore) {
	dashboard := NewDashboard()
	history := planner.NewHistory(constants.MaxHistoryEntries)
	templates := planner.NewTemplateStore()
	h := NewGenerateHandler(testConfig(), dashboard, history, templates)
	h.newProvider = func(name string) (ai.Provider, error) {
		return provider, nil
	}
	return h, dashboard, history, templates
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}

// addHistoryEntry stores a minimal entry and returns it.
func addHistoryEntry(history *planner.History, id string) *planner.HistoryEntry {
	entry := &planner.HistoryEntry{
		ID:       id,
		Provider: "test-model",
		Request:  planner.PlanningRequest{Niche: "coffee roasting"}.Normalize(),
		Content: planner.GeneratedContent{
			RawText: "1. First idea\n2. Second idea",
			Sections: []planner.Section{
				{Title: "1", Body: "First idea"},
				{Title: "2", Body: "Second idea"},
			},
		},
	}
	history.Add(entry)
	return entry
}
