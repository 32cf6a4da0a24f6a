package llm

import "context"

// Options are the generation parameters for one call.
type Options struct {
	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64

	// TopP is the nucleus sampling cutoff.
	TopP float64
}

// DefaultOptions returns the parameters every plan call uses.
func DefaultOptions() Options {
	return Options{
		MaxTokens:   700,
		Temperature: 0.7,
		TopP:        0.95,
	}
}

// Adapter is the interface all text-generation providers implement. An
// adapter normalizes its provider's response and error shapes at this
// boundary; callers only ever see plain text or a classified error.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// IsAvailable checks if this adapter can be used (API key set, etc.)
	IsAvailable() bool

	// Generate sends prompts to the provider and returns the raw text.
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error)
}

// Config holds configuration for provider adapters.
type Config struct {
	// Provider selects an adapter ("gemini", "anthropic", or "auto").
	Provider string `yaml:"provider"`

	// Model specifies which model to use (optional, adapter chooses default).
	Model string `yaml:"model"`

	// APIKey for direct API access (optional if the provider env var is set).
	APIKey string `yaml:"api_key"`
}
