package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/content-planner/internal/constants"
)

//go:embed models.yaml
var modelsYAML []byte

type Config struct {
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Planner PlannerConfig
	Models  ModelsConfig
}

type GeminiConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	Token string
}

type PlannerConfig struct {
	// DefaultProvider is used when a request doesn't name one (defaults to gemini)
	DefaultProvider string
	// Language for generated content (defaults to English)
	Language string
}

type ModelsConfig struct {
	Models map[string]ModelSettings `yaml:"models"`
}

type ModelSettings struct {
	Temperature     float32        `yaml:"temperature"`
	MaxOutputTokens int32          `yaml:"max_output_tokens"`
	Pricing         RequestPricing `yaml:"pricing"`
}

// RequestPricing holds input/output prices per 1M tokens
type RequestPricing struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

// envOr reads an environment variable and falls back to a default when unset.
func envOr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// geminiAPIKey resolves the Gemini key. GOOGLE_API_KEY is the documented
// variable; GEMINI_API_KEY is accepted as an alias.
func geminiAPIKey() string {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}

func Load() *Config {
	var models ModelsConfig
	if err := yaml.Unmarshal(modelsYAML, &models); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded models.yaml: " + err.Error())
	}

	return &Config{
		Gemini: GeminiConfig{
			APIKey: geminiAPIKey(),
		},
		OpenAI: OpenAIConfig{
			Token: os.Getenv("OPENAI_TOKEN"),
		},
		Planner: PlannerConfig{
			DefaultProvider: envOr("PLANNER_PROVIDER", constants.ProviderGemini),
			Language:        envOr("PLANNER_LANGUAGE", "English"),
		},
		Models: models,
	}
}

// Validate checks that the configured default provider has credentials.
// Called at startup so a missing API key fails before any UI is served.
func (c *Config) Validate() error {
	switch c.Planner.DefaultProvider {
	case constants.ProviderGemini:
		if c.Gemini.APIKey == "" {
			return errors.New("GOOGLE_API_KEY environment variable is required")
		}
	case constants.ProviderOpenAI:
		if c.OpenAI.Token == "" {
			return errors.New("OPENAI_TOKEN environment variable is required")
		}
	default:
		return fmt.Errorf("unknown provider: %s", c.Planner.DefaultProvider)
	}
	return nil
}

// GetModelSettings returns generation settings for a model, zero value if unknown.
func (c *Config) GetModelSettings(modelName string) ModelSettings {
	if settings, ok := c.Models.Models[modelName]; ok {
		return settings
	}
	return ModelSettings{}
}
