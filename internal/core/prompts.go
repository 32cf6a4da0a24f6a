package core

import (
	"fmt"
	"strings"
)

// PlannerPersona is the system instruction sent with every generation call.
const PlannerPersona = `You are DayByDay, a friendly day-by-day planning assistant.

Rules:
- Produce short, actionable steps a person can finish in one sitting.
- Be concrete: verbs first, no filler, no motivational fluff.
- Never reveal what model or service you are built on. If asked, say you are
  the DayByDay assistant and move on.`

// planFormatContract is the literal output structure every plan request
// demands. The plan-text parser depends on finding these exact tokens.
const planFormatContract = `STRICT FORMAT:

Day 1:
- task
- task

Day 2:
- task

Continue until Day 8.
NO extra explanation.`

// BuildPlanPrompt assembles the user prompt for a full eight-day plan.
// Prior examples, when present, show the model how this user edits
// generated plans.
func BuildPlanPrompt(title, constraints string, examples []PlanExample) string {
	var b strings.Builder

	b.WriteString("Create an 8-day plan.\n")
	b.WriteString(planFormatContract)
	b.WriteString("\n")

	for i, ex := range examples {
		fmt.Fprintf(&b, "\nEXAMPLE %d\nIDEA:\n%s\nPLAN YOU GENERATED:\n%s\nPLAN AFTER USER EDITS:\n%s\n",
			i+1, ex.Idea, ex.Generated, ex.Edited)
	}

	fmt.Fprintf(&b, "\nPLAN REQUEST:\n%s\n", title)
	if strings.TrimSpace(constraints) != "" {
		fmt.Fprintf(&b, "CONSTRAINTS:\n%s\n", constraints)
	}
	return b.String()
}

// BuildDayPrompt asks for replacement tasks for a single day of an
// existing plan, one bullet per line.
func BuildDayPrompt(p *Project, dayIndex int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "An 8-day plan exists for this goal:\n%s\n", p.Title)
	if strings.TrimSpace(p.Constraints) != "" {
		fmt.Fprintf(&b, "CONSTRAINTS:\n%s\n", p.Constraints)
	}
	fmt.Fprintf(&b, "\nWrite fresh tasks for Day %d only.\n", dayIndex+1)
	b.WriteString("At most 6 tasks, one per line, each starting with \"- \".\nNO headers, NO extra explanation.")
	return b.String()
}

// BuildSuggestionsPrompt asks for short follow-up suggestions for a feed
// post, one per line.
func BuildSuggestionsPrompt(postText string) string {
	return fmt.Sprintf("Someone posted this update:\n%s\n\nSuggest up to 3 short next steps they could take.\nOne per line, each starting with \"- \". NO extra explanation.", postText)
}

// BuildChatPrompt flattens the transcript and the new message into a single
// user prompt for the assistant chat.
func BuildChatPrompt(transcript []ChatMessage, message string) string {
	var b strings.Builder
	if len(transcript) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, m := range transcript {
			label := "User"
			if m.Role == RoleAssistant {
				label = "Assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", label, m.Text)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "User: %s\nReply briefly and helpfully.", message)
	return b.String()
}

// FallbackPlan is the deterministic plan substituted when generation fails.
// It conforms to the same Day 1..Day 8 structural contract the parser and
// UI rely on, so downstream code never sees malformed input.
func FallbackPlan(title, constraints string) string {
	goal := strings.TrimSpace(title)
	if goal == "" {
		goal = "your goal"
	}

	days := [Days][]string{
		{fmt.Sprintf("Write down exactly what finished looks like for %q", goal),
			"Gather the notes, links, and materials you already have"},
		{"Split the goal into three or four milestones",
			"Decide which milestone belongs to which day"},
		{"Start milestone one with a 25-minute focused block",
			"Note anything that slowed you down"},
		{"Finish milestone one",
			"Adjust the remaining days based on what you learned"},
		{"Start milestone two",
			"Remove one distraction from your workspace"},
		{"Finish milestone two",
			"Share progress with someone who will ask about it"},
		{"Tackle the part you have been avoiding",
			"Keep the session short; stopping is allowed, skipping is not"},
		{fmt.Sprintf("Do a final pass on %q", goal),
			"Write a short retro: what to repeat, what to drop"},
	}

	if c := strings.TrimSpace(constraints); c != "" {
		days[0] = append(days[0], fmt.Sprintf("Re-read your constraints: %s", c))
	}

	var b strings.Builder
	for d := 0; d < Days; d++ {
		if d > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Day %d:\n", d+1)
		for _, t := range days[d] {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}
	return b.String()
}

// FallbackDayLines are the scripted replacement tasks for one day when the
// single-day regeneration call fails.
func FallbackDayLines(dayIndex int) []string {
	return []string{
		fmt.Sprintf("Review what Day %d was supposed to achieve", dayIndex+1),
		"Pick the single most useful task and do it first",
		"Spend 25 focused minutes, then reassess",
	}
}

// FallbackSuggestions are the scripted feed follow-ups.
func FallbackSuggestions() []string {
	return []string{
		"Break it into one small step you can do today",
		"Set a 25-minute timer and just start",
		"Tell someone your goal so they can ask about it",
	}
}

// FallbackChatReply is the scripted assistant reply when the collaborator
// is unreachable.
func FallbackChatReply() string {
	return "I can't reach the planning service right now, but your message is saved. " +
		"Meanwhile: open your plan, pick the smallest unfinished task, and give it 25 minutes."
}
