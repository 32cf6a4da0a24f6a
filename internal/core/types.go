package core

import "time"

// Days is the fixed length of every plan. The app plans exactly eight days;
// a day with no tasks is an empty slice, never nil in persisted form.
const Days = 8

// Task is a single actionable item inside one day of a plan.
type Task struct {
	// ID is unique across all eight days of a project and is never reused
	// after removal. New IDs are minted as max-existing-ID + 1.
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// DayTasks holds the ordered tasks for all eight days (index 0 = Day 1).
type DayTasks [Days][]Task

// Project is one user goal together with its generated and edited plan.
type Project struct {
	Title       string     `json:"title"`
	Constraints string     `json:"constraints"`
	RawPlan     string     `json:"raw_plan"`
	Tasks       DayTasks   `json:"tasks"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
}

// Role identifies who wrote a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a session's assistant transcript.
type ChatMessage struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

// FeedEntry is a post on the shared feed plus AI follow-up suggestions.
type FeedEntry struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Text        string    `json:"text"`
	Time        time.Time `json:"time"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// Tab is the UI surface a session is currently on.
type Tab string

const (
	TabHome    Tab = "home"
	TabPlanner Tab = "planner"
	TabChat    Tab = "chat"
	TabFeed    Tab = "feed"
)

// ValidTab reports whether s names a known tab.
func ValidTab(s string) bool {
	switch Tab(s) {
	case TabHome, TabPlanner, TabChat, TabFeed:
		return true
	}
	return false
}

// PlanExample is a prior generation transcript used as a few-shot example:
// the original idea, what was generated for it, and how the user edited it.
type PlanExample struct {
	Idea      string `json:"idea"`
	Generated string `json:"generated"`
	Edited    string `json:"edited"`
}
