package ai

import "context"

// Provider defines the interface for text-generation backends.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// Usage tracking.
	GetUsage() *Usage
	ResetUsage()
}

// GenerateOptions holds per-call generation parameters. Zero values mean
// "use the provider default".
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// Usage tracks token usage and calculates cost.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalCost    float64 // in USD
}

// RequestPricing holds input/output prices per 1M tokens
type RequestPricing struct {
	Input  float64
	Output float64
}
