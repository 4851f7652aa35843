package handlers

import (
	"net/http"

	"github.com/kozaktomas/content-planner/internal/config"
	"github.com/kozaktomas/content-planner/internal/constants"
)

// ConfigHandler handles configuration endpoints
type ConfigHandler struct {
	config *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		config: cfg,
	}
}

// ConfigResponse represents the configuration response
type ConfigResponse struct {
	Providers       []ProviderInfo `json:"providers"`
	DefaultProvider string         `json:"default_provider"`
	Language        string         `json:"language"`
}

// ProviderInfo represents information about an AI provider
type ProviderInfo struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Get returns the available configuration
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	providers := []ProviderInfo{
		{
			Name:      constants.ProviderGemini,
			Available: h.config.Gemini.APIKey != "",
		},
		{
			Name:      constants.ProviderOpenAI,
			Available: h.config.OpenAI.Token != "",
		},
	}

	response := ConfigResponse{
		Providers:       providers,
		DefaultProvider: h.config.Planner.DefaultProvider,
		Language:        h.config.Planner.Language,
	}

	respondJSON(w, http.StatusOK, response)
}
