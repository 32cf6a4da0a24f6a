package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dhabedank/daybyday/internal/llm"
)

// stubAdapter returns a fixed reply or error.
type stubAdapter struct {
	reply string
	err   error
}

func (s *stubAdapter) Name() string      { return "stub" }
func (s *stubAdapter) IsAvailable() bool { return true }
func (s *stubAdapter) Generate(ctx context.Context, systemPrompt, userPrompt string, opts llm.Options) (string, error) {
	return s.reply, s.err
}

func TestGeneratePlanSuccess(t *testing.T) {
	g := NewGenerator(&stubAdapter{reply: "Day 1:\n- do the thing\n"})

	raw, usedFallback := g.GeneratePlan(context.Background(), "Learn Go", "", nil)
	if usedFallback {
		t.Fatal("fallback used despite a working adapter")
	}
	if g.LastError() != nil {
		t.Errorf("LastError = %v, want nil", g.LastError())
	}
	if !strings.Contains(raw, "do the thing") {
		t.Errorf("raw plan = %q, want the adapter output", raw)
	}
}

func TestGeneratePlanNilAdapterFallsBack(t *testing.T) {
	g := NewGenerator(nil)

	raw, usedFallback := g.GeneratePlan(context.Background(), "Learn Go", "weekends", nil)
	if !usedFallback {
		t.Fatal("fallback not used with a nil adapter")
	}
	if !errors.Is(g.LastError(), llm.ErrNoCredential) {
		t.Errorf("LastError = %v, want ErrNoCredential", g.LastError())
	}
	if g.Notice() == "" {
		t.Error("Notice is empty, want a remediation message")
	}

	// The scripted plan honors the same structural contract as real output.
	days := ParsePlan(raw)
	for d := 0; d < Days; d++ {
		if len(days[d]) == 0 {
			t.Errorf("fallback plan day %d has no tasks", d+1)
		}
	}
	for d := 1; d <= Days; d++ {
		if !strings.Contains(raw, fmt.Sprintf("Day %d:", d)) {
			t.Errorf("fallback plan missing Day %d header", d)
		}
	}
}

func TestGeneratePlanAdapterErrorFallsBack(t *testing.T) {
	g := NewGenerator(&stubAdapter{err: errors.New("connection refused")})

	_, usedFallback := g.GeneratePlan(context.Background(), "Learn Go", "", nil)
	if !usedFallback {
		t.Fatal("fallback not used after an adapter error")
	}
	if g.LastError() == nil {
		t.Error("LastError = nil after a failed call")
	}
}

func TestGeneratePlanEmptyResponseFallsBack(t *testing.T) {
	g := NewGenerator(&stubAdapter{reply: "   \n  "})

	_, usedFallback := g.GeneratePlan(context.Background(), "Learn Go", "", nil)
	if !usedFallback {
		t.Fatal("fallback not used for a blank response")
	}
	if !errors.Is(g.LastError(), llm.ErrEmptyResponse) {
		t.Errorf("LastError = %v, want ErrEmptyResponse", g.LastError())
	}
}

func TestRevokedCredentialSurfacesDistinctNotice(t *testing.T) {
	g := NewGenerator(&stubAdapter{err: errors.New("API key has been disabled: leaked credential detected")})

	g.GeneratePlan(context.Background(), "Learn Go", "", nil)
	if !errors.Is(g.LastError(), llm.ErrRevokedCredential) {
		t.Fatalf("LastError = %v, want ErrRevokedCredential", g.LastError())
	}
	if g.Notice() == llm.Remediation(llm.ErrNoCredential) {
		t.Error("revoked-key notice matches the missing-key notice, want a distinct remediation")
	}
}

func TestRegenerateDayLines(t *testing.T) {
	g := NewGenerator(&stubAdapter{reply: "- one\n- two\n- three\n- four\n- five\n- six\n- seven\n"})
	p := NewProject("Learn Go", "")

	lines, usedFallback := g.RegenerateDayLines(context.Background(), p, 2)
	if usedFallback {
		t.Fatal("fallback used despite a working adapter")
	}
	if len(lines) != regenerateDayMax {
		t.Errorf("got %d lines, want the cap of %d", len(lines), regenerateDayMax)
	}
	if lines[0] != "one" {
		t.Errorf("first line = %q, want bullet marker stripped", lines[0])
	}
}

func TestRegenerateDayLinesNoUsableLines(t *testing.T) {
	g := NewGenerator(&stubAdapter{reply: "Day 3:\nGoal: something\n"})
	p := NewProject("Learn Go", "")

	lines, usedFallback := g.RegenerateDayLines(context.Background(), p, 2)
	if !usedFallback {
		t.Fatal("fallback not used when the reply held only headers")
	}
	if !errors.Is(g.LastError(), llm.ErrEmptyResponse) {
		t.Errorf("LastError = %v, want ErrEmptyResponse", g.LastError())
	}
	if len(lines) == 0 {
		t.Error("fallback returned no lines")
	}
}

func TestSuggestForPostCapsAtThree(t *testing.T) {
	g := NewGenerator(&stubAdapter{reply: "- a\n- b\n- c\n- d\n"})

	suggestions, usedFallback := g.SuggestForPost(context.Background(), "shipped the first draft")
	if usedFallback {
		t.Fatal("fallback used despite a working adapter")
	}
	if len(suggestions) != 3 {
		t.Errorf("got %d suggestions, want 3", len(suggestions))
	}
}

func TestSuggestForPostFallbackNotice(t *testing.T) {
	g := NewGenerator(nil)

	suggestions, usedFallback := g.SuggestForPost(context.Background(), "shipped the first draft")
	if !usedFallback {
		t.Fatal("fallback not used with a nil adapter")
	}
	if len(suggestions) == 0 {
		t.Error("fallback returned no suggestions")
	}
	if g.Notice() == "" {
		t.Error("Notice is empty after a fallback, want a remediation message to display")
	}
}

func TestChatFallback(t *testing.T) {
	g := NewGenerator(nil)

	reply, usedFallback := g.Chat(context.Background(), nil, "where do I start?")
	if !usedFallback {
		t.Fatal("fallback not used with a nil adapter")
	}
	if reply == "" {
		t.Error("fallback reply is empty")
	}
}
