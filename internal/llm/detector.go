package llm

import (
	"fmt"
	"os"
)

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string // Model identifier (e.g., "gemini-2.5-flash")
	Name        string // Human-readable name
	Description string // Brief description
	Provider    string // Provider name ("gemini" or "anthropic")
}

// geminiModels lists the Generative Language API models the app supports.
var geminiModels = []ModelInfo{
	{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", Description: "Fast, good default for plans", Provider: "gemini"},
	{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", Description: "Slower, more careful plans", Provider: "gemini"},
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Description: "Legacy fast model", Provider: "gemini"},
}

// anthropicModels lists the Anthropic API models the app supports.
var anthropicModels = []ModelInfo{
	{ID: "claude-haiku-4-5-20251001", Name: "Claude Haiku 4.5", Description: "Fastest, most cost-effective", Provider: "anthropic"},
	{ID: "claude-sonnet-4-5-20250929", Name: "Claude Sonnet 4.5", Description: "Best balance of speed and capability", Provider: "anthropic"},
}

// ProviderModels returns the models offered for one provider.
func ProviderModels(provider string) []ModelInfo {
	switch provider {
	case "gemini":
		return geminiModels
	case "anthropic":
		return anthropicModels
	}
	return nil
}

// Providers lists the selectable provider names in preference order.
func Providers() []string {
	return []string{"gemini", "anthropic"}
}

// Detect finds a usable adapter for the given config. With provider "auto"
// (or empty) it prefers Gemini, then Anthropic, based on which key is
// present. Returns ErrNoCredential when no provider is usable; the caller
// is expected to fall back to scripted output, never to crash.
func Detect(config Config) (Adapter, error) {
	switch config.Provider {
	case "gemini":
		return NewGeminiAdapter(config)
	case "anthropic":
		return NewAnthropicAdapter(config)
	case "", "auto":
		if config.APIKey != "" || os.Getenv("GEMINI_API_KEY") != "" {
			return NewGeminiAdapter(config)
		}
		if os.Getenv("ANTHROPIC_API_KEY") != "" {
			return NewAnthropicAdapter(config)
		}
		return nil, ErrNoCredential
	default:
		return nil, fmt.Errorf("unknown provider: %s", config.Provider)
	}
}
