package llm

import (
	"errors"
	"testing"
)

func TestDetectAuto(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := Detect(Config{}); !errors.Is(err, ErrNoCredential) {
		t.Errorf("Detect with no keys: err = %v, want ErrNoCredential", err)
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	adapter, err := Detect(Config{})
	if err != nil {
		t.Fatalf("Detect with anthropic key: %v", err)
	}
	if adapter.Name() != "anthropic" {
		t.Errorf("adapter = %q, want anthropic", adapter.Name())
	}

	// Gemini wins when both keys are present.
	t.Setenv("GEMINI_API_KEY", "g-test")
	adapter, err = Detect(Config{})
	if err != nil {
		t.Fatalf("Detect with both keys: %v", err)
	}
	if adapter.Name() != "gemini" {
		t.Errorf("adapter = %q, want gemini", adapter.Name())
	}
}

func TestDetectExplicitProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := Detect(Config{Provider: "anthropic", APIKey: "sk-test"}); err != nil {
		t.Errorf("explicit anthropic with key: %v", err)
	}
	if _, err := Detect(Config{Provider: "gemini"}); !errors.Is(err, ErrNoCredential) {
		t.Errorf("explicit gemini without key: err = %v, want ErrNoCredential", err)
	}
	if _, err := Detect(Config{Provider: "openai"}); err == nil {
		t.Error("unknown provider accepted")
	}
}

func TestProviderModels(t *testing.T) {
	for _, provider := range Providers() {
		models := ProviderModels(provider)
		if len(models) == 0 {
			t.Errorf("no models for provider %q", provider)
		}
		for _, m := range models {
			if m.Provider != provider {
				t.Errorf("model %q tagged %q, want %q", m.ID, m.Provider, provider)
			}
		}
	}
	if ProviderModels("openai") != nil {
		t.Error("unknown provider should have no models")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.MaxTokens != 700 {
		t.Errorf("MaxTokens = %d, want 700", opts.MaxTokens)
	}
	if opts.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", opts.Temperature)
	}
	if opts.TopP != 0.95 {
		t.Errorf("TopP = %v, want 0.95", opts.TopP)
	}
}
