package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kozaktomas/content-planner/internal/ai"
	"github.com/kozaktomas/content-planner/internal/config"
	"github.com/kozaktomas/content-planner/internal/constants"
	"github.com/kozaktomas/content-planner/internal/planner"
)

// GenerateHandler runs the submit cycle: validate, build prompt, call the
// AI provider, segment the response, record history.
type GenerateHandler struct {
	config    *config.Config
	dashboard *Dashboard
	history   *planner.History
	templates *planner.TemplateStore

	// newProvider is swappable in tests.
	newProvider func(name string) (ai.Provider, error)
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(cfg *config.Config, dashboard *Dashboard, history *planner.History, templates *planner.TemplateStore) *GenerateHandler {
	h := &GenerateHandler{
		config:    cfg,
		dashboard: dashboard,
		history:   history,
		templates: templates,
	}
	h.newProvider = h.createProvider
	return h
}

// GenerateRequest represents a generation submission.
type GenerateRequest struct {
	planner.PlanningRequest
	Provider string `json:"provider,omitempty"`
	Template string `json:"template,omitempty"` // name of a saved prompt template
}

// UsageInfo represents API usage information.
type UsageInfo struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalCost    float64 `json:"total_cost"`
}

// GenerateResponse represents a completed generation.
type GenerateResponse struct {
	Entry *planner.HistoryEntry `json:"entry"`
	Usage *UsageInfo            `json:"usage"`
	State DashboardState        `json:"state"`
}

// Generate handles one synchronous submit cycle.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	// Validation failures never touch the state machine; they are shown inline.
	if err := req.PlanningRequest.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Language == "" {
		req.Language = h.config.Planner.Language
	}

	if err := h.dashboard.Begin(); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	prompt, err := h.buildPrompt(req)
	if err != nil {
		h.dashboard.Fail(err.Error())
		respondError(w, statusForError(err), err.Error())
		return
	}

	provider, err := h.newProvider(req.Provider)
	if err != nil {
		h.dashboard.Fail(err.Error())
		respondError(w, statusForError(err), err.Error())
		return
	}

	settings := h.config.GetModelSettings(provider.Name())
	opts := ai.GenerateOptions{
		Temperature:     settings.Temperature,
		MaxOutputTokens: settings.MaxOutputTokens,
	}

	log.Printf("Generating %s plan for niche '%s' with %s", req.Kind, sanitizeForLog(req.Niche), provider.Name())

	rawText, err := ai.GenerateWithRetry(r.Context(), provider, prompt, opts)
	if err != nil {
		log.Printf("Generation failed: %v", err)
		h.dashboard.Fail(err.Error())
		respondError(w, statusForError(err), err.Error())
		return
	}

	entry := &planner.HistoryEntry{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Provider:  provider.Name(),
		Request:   req.PlanningRequest.Normalize(),
		Prompt:    prompt,
		Content:   planner.Format(rawText),
	}
	h.history.Add(entry)
	h.dashboard.Complete(entry.ID)

	usage := provider.GetUsage()
	respondJSON(w, http.StatusOK, GenerateResponse{
		Entry: entry,
		Usage: &UsageInfo{
			InputTokens:  usage.InputTokens,
			OutputTokens: usage.OutputTokens,
			TotalCost:    usage.TotalCost,
		},
		State: StateRendered,
	})
}

// Status returns the dashboard state machine snapshot.
func (h *GenerateHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dashboard.Snapshot())
}

// buildPrompt picks between the default prompt and a saved template.
func (h *GenerateHandler) buildPrompt(req GenerateRequest) (string, error) {
	if req.Template == "" {
		return planner.BuildPrompt(req.PlanningRequest)
	}
	body, ok := h.templates.Get(req.Template)
	if !ok {
		return "", &ai.Error{Kind: ai.KindValidation, Message: fmt.Sprintf("unknown template: %s", req.Template)}
	}
	return planner.BuildPromptFromTemplate(body, req.PlanningRequest)
}

// createProvider builds the AI provider for a request, falling back to the
// configured default when none is named.
func (h *GenerateHandler) createProvider(name string) (ai.Provider, error) {
	if name == "" {
		name = h.config.Planner.DefaultProvider
	}
	switch name {
	case constants.ProviderGemini:
		settings := h.config.GetModelSettings(ai.GeminiModel)
		provider, err := ai.NewGeminiProvider(context.Background(), h.config.Gemini.APIKey, ai.RequestPricing(settings.Pricing))
		if err != nil {
			return nil, fmt.Errorf("creating Gemini provider: %w", err)
		}
		return provider, nil
	case constants.ProviderOpenAI:
		settings := h.config.GetModelSettings(ai.OpenAIModel)
		provider, err := ai.NewOpenAIProvider(h.config.OpenAI.Token, ai.RequestPricing(settings.Pricing))
		if err != nil {
			return nil, fmt.Errorf("creating OpenAI provider: %w", err)
		}
		return provider, nil
	default:
		return nil, &ai.Error{Kind: ai.KindValidation, Message: fmt.Sprintf("unknown provider: %s", name)}
	}
}
