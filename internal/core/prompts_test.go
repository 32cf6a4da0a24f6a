package core

import (
	"strings"
	"testing"
)

func TestBuildPlanPrompt(t *testing.T) {
	prompt := BuildPlanPrompt("Learn Go basics", "evenings only", nil)

	for _, want := range []string{
		"Day 1:",
		"Continue until Day 8.",
		"Learn Go basics",
		"evenings only",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPlanPromptOmitsEmptyConstraints(t *testing.T) {
	prompt := BuildPlanPrompt("Learn Go basics", "   ", nil)
	if strings.Contains(prompt, "CONSTRAINTS") {
		t.Error("prompt contains a constraints section for blank constraints")
	}
}

func TestBuildPlanPromptWithExamples(t *testing.T) {
	examples := []PlanExample{
		{Idea: "Write a short story", Generated: "Day 1:\n- brainstorm\n", Edited: "Day 1:\n- freewrite\n"},
	}
	prompt := BuildPlanPrompt("Learn Go basics", "", examples)

	for _, want := range []string{"EXAMPLE 1", "Write a short story", "brainstorm", "freewrite"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildDayPrompt(t *testing.T) {
	p := NewProject("Learn Go basics", "evenings only")
	prompt := BuildDayPrompt(p, 4)

	for _, want := range []string{"Day 5", "Learn Go basics", "evenings only"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildChatPrompt(t *testing.T) {
	transcript := []ChatMessage{
		{Role: RoleUser, Text: "how do I start?"},
		{Role: RoleAssistant, Text: "open your plan and pick day one"},
	}
	prompt := BuildChatPrompt(transcript, "what about day two?")

	for _, want := range []string{
		"User: how do I start?",
		"Assistant: open your plan and pick day one",
		"User: what about day two?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestPlannerPersonaHidesIdentity(t *testing.T) {
	if !strings.Contains(PlannerPersona, "Never reveal") {
		t.Error("persona does not instruct the assistant to keep its identity private")
	}
}
