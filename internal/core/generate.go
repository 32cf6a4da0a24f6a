package core

import (
	"context"
	"strings"

	"github.com/dhabedank/daybyday/internal/llm"
)

// regenerateDayMax caps how many lines a single-day regeneration keeps.
const regenerateDayMax = 6

// Generator orchestrates prompt building, the external generation call,
// and the fallback to scripted output. Every method returns usable text;
// failures are classified, remembered in a last-error slot for display,
// and never surfaced as errors to the caller.
type Generator struct {
	adapter llm.Adapter
	opts    llm.Options
	lastErr error
}

// NewGenerator wraps an adapter. A nil adapter is valid and means every
// call uses the scripted fallback (no credential configured).
func NewGenerator(adapter llm.Adapter) *Generator {
	return &Generator{
		adapter: adapter,
		opts:    llm.DefaultOptions(),
	}
}

// LastError returns the classified error from the most recent call, or nil
// if it succeeded.
func (g *Generator) LastError() error {
	return g.lastErr
}

// Notice returns the human-actionable message for the last failure, or ""
// when the last call used the real service.
func (g *Generator) Notice() string {
	return llm.Remediation(g.lastErr)
}

// call runs one generation attempt and classifies the outcome. A single
// attempt only: the policy on error is fall back, never retry.
func (g *Generator) call(ctx context.Context, userPrompt string) (string, error) {
	if g.adapter == nil {
		return "", llm.ErrNoCredential
	}
	text, err := g.adapter.Generate(ctx, PlannerPersona, userPrompt, g.opts)
	if err != nil {
		return "", llm.Classify(err)
	}
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyResponse
	}
	return strings.TrimSpace(text), nil
}

// GeneratePlan produces the raw plan text for a goal. The second return
// reports whether the scripted fallback was used.
func (g *Generator) GeneratePlan(ctx context.Context, title, constraints string, examples []PlanExample) (string, bool) {
	text, err := g.call(ctx, BuildPlanPrompt(title, constraints, examples))
	g.lastErr = err
	if err != nil {
		return FallbackPlan(title, constraints), true
	}
	return text, false
}

// RegenerateDayLines produces replacement task lines for one day.
func (g *Generator) RegenerateDayLines(ctx context.Context, p *Project, dayIndex int) ([]string, bool) {
	text, err := g.call(ctx, BuildDayPrompt(p, dayIndex))
	g.lastErr = err
	if err != nil {
		return FallbackDayLines(dayIndex), true
	}
	lines := bulletLines(text, regenerateDayMax)
	if len(lines) == 0 {
		g.lastErr = llm.ErrEmptyResponse
		return FallbackDayLines(dayIndex), true
	}
	return lines, false
}

// SuggestForPost produces up to three follow-up suggestions for a feed post.
func (g *Generator) SuggestForPost(ctx context.Context, postText string) ([]string, bool) {
	text, err := g.call(ctx, BuildSuggestionsPrompt(postText))
	g.lastErr = err
	if err != nil {
		return FallbackSuggestions(), true
	}
	lines := bulletLines(text, 3)
	if len(lines) == 0 {
		g.lastErr = llm.ErrEmptyResponse
		return FallbackSuggestions(), true
	}
	return lines, false
}

// Chat produces the assistant's reply to a chat message.
func (g *Generator) Chat(ctx context.Context, transcript []ChatMessage, message string) (string, bool) {
	text, err := g.call(ctx, BuildChatPrompt(transcript, message))
	g.lastErr = err
	if err != nil {
		return FallbackChatReply(), true
	}
	return text, false
}

// bulletLines extracts up to max non-empty lines from generated text,
// stripping leading bullet markers.
func bulletLines(text string, max int) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "-*• "))
		if line == "" || isStructuralHeader(line) {
			continue
		}
		lines = append(lines, line)
		if len(lines) == max {
			break
		}
	}
	return lines
}
