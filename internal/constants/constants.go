// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

import "time"

// AI provider names
const (
	// ProviderGemini is the Google Gemini provider (default)
	ProviderGemini = "gemini"

	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI = "openai"
)

// Generation constants
const (
	// GenerateTimeout bounds a single call to the text-generation endpoint
	GenerateTimeout = 30 * time.Second

	// MaxGenerateRetries is the number of retries after a transient failure
	MaxGenerateRetries = 2

	// RetryBackoff is the base delay between retries; attempt N waits N times this
	RetryBackoff = 2 * time.Second

	// DefaultLengthWords is the target word count when the request doesn't set one
	DefaultLengthWords = 400
)

// Request constants
const (
	// MaxNicheLength is the maximum accepted length for the niche field
	MaxNicheLength = 200

	// MaxAudienceLength is the maximum accepted length for the audience field
	MaxAudienceLength = 200
)

// History constants
const (
	// MaxHistoryEntries caps the in-memory history; oldest entries are evicted
	MaxHistoryEntries = 100
)
