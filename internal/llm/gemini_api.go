package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// defaultGeminiEndpoint is the Generative Language API base URL.
const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// GeminiAdapter talks to the Google Generative Language REST API. This is
// the provider the original DayByDay deployment used; there is no SDK
// dependency, just a small typed JSON client.
type GeminiAdapter struct {
	apiKey   string
	model    string
	endpoint string
	http     *http.Client
}

// NewGeminiAdapter creates a Gemini adapter.
func NewGeminiAdapter(config Config) (*GeminiAdapter, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY not set", ErrNoCredential)
	}

	model := config.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiAdapter{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultGeminiEndpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) IsAvailable() bool {
	return true // key presence is checked at construction
}

// Request/response bodies for POST /models/<model>:generateContent.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *GeminiAdapter) Generate(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error) {
	body := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: opts.MaxTokens,
			Temperature:     opts.Temperature,
			TopP:            opts.TopP,
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.endpoint, a.model, a.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := a.http.Do(httpReq)
	if err != nil {
		return "", Classify(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		msg := string(respBody)
		if resp.Error != nil {
			msg = resp.Error.Message
		}
		return "", Classify(fmt.Errorf("gemini returned status %d: %s", httpResp.StatusCode, msg))
	}

	var output strings.Builder
	if len(resp.Candidates) > 0 {
		for _, part := range resp.Candidates[0].Content.Parts {
			output.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(output.String()) == "" {
		return "", ErrEmptyResponse
	}
	return output.String(), nil
}
