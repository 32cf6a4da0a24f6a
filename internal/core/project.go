package core

import (
	"fmt"
	"strings"
	"time"
)

// NewProject creates an empty project: eight empty day slots, no plan.
func NewProject(title, constraints string) *Project {
	p := &Project{
		Title:       strings.TrimSpace(title),
		Constraints: strings.TrimSpace(constraints),
	}
	for d := 0; d < Days; d++ {
		p.Tasks[d] = []Task{}
	}
	return p
}

// maxTaskID returns the highest task ID across all eight days, or -1 when
// the project has no tasks. IDs share one space across days.
func (p *Project) maxTaskID() int {
	max := -1
	for d := 0; d < Days; d++ {
		for _, t := range p.Tasks[d] {
			if t.ID > max {
				max = t.ID
			}
		}
	}
	return max
}

// ApplyGeneratedPlan replaces all eight days with the parse of rawText and
// records the generation moment.
func (p *Project) ApplyGeneratedPlan(rawText string, now time.Time) {
	p.RawPlan = rawText
	p.GeneratedAt = &now
	p.Tasks = ParsePlan(rawText)
}

// AddTask appends a task with a freshly minted ID to the given day.
// Whitespace-only text is rejected as a no-op.
func (p *Project) AddTask(dayIndex int, text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if dayIndex < 0 || dayIndex >= Days || text == "" {
		return Task{}, false
	}
	t := Task{ID: p.maxTaskID() + 1, Text: text}
	p.Tasks[dayIndex] = append(p.Tasks[dayIndex], t)
	return t, true
}

// ToggleTask flips the done flag of the matching task. No-op when the ID
// is not present in that day.
func (p *Project) ToggleTask(dayIndex, taskID int) bool {
	if dayIndex < 0 || dayIndex >= Days {
		return false
	}
	for i := range p.Tasks[dayIndex] {
		if p.Tasks[dayIndex][i].ID == taskID {
			p.Tasks[dayIndex][i].Done = !p.Tasks[dayIndex][i].Done
			return true
		}
	}
	return false
}

// EditTaskText replaces the text of the matching task. Whitespace-only
// replacement text is rejected; a missing ID is a no-op.
func (p *Project) EditTaskText(dayIndex, taskID int, newText string) bool {
	newText = strings.TrimSpace(newText)
	if dayIndex < 0 || dayIndex >= Days || newText == "" {
		return false
	}
	for i := range p.Tasks[dayIndex] {
		if p.Tasks[dayIndex][i].ID == taskID {
			p.Tasks[dayIndex][i].Text = newText
			return true
		}
	}
	return false
}

// RemoveTask filters the matching task out of the day. No-op when absent.
func (p *Project) RemoveTask(dayIndex, taskID int) bool {
	if dayIndex < 0 || dayIndex >= Days {
		return false
	}
	for i, t := range p.Tasks[dayIndex] {
		if t.ID == taskID {
			p.Tasks[dayIndex] = append(p.Tasks[dayIndex][:i], p.Tasks[dayIndex][i+1:]...)
			return true
		}
	}
	return false
}

// RegenerateDay wholesale-replaces one day with tasks built from the given
// lines (at most six), all undone, IDs continuing from the project-wide max.
func (p *Project) RegenerateDay(dayIndex int, lines []string) bool {
	if dayIndex < 0 || dayIndex >= Days {
		return false
	}
	if len(lines) > regenerateDayMax {
		lines = lines[:regenerateDayMax]
	}
	// IDs continue past the pre-replacement project-wide max so the IDs
	// of the replaced tasks are never reused.
	nextID := p.maxTaskID() + 1
	p.Tasks[dayIndex] = []Task{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p.Tasks[dayIndex] = append(p.Tasks[dayIndex], Task{ID: nextID, Text: line})
		nextID++
	}
	return true
}

// ClearDay empties one day.
func (p *Project) ClearDay(dayIndex int) bool {
	if dayIndex < 0 || dayIndex >= Days {
		return false
	}
	p.Tasks[dayIndex] = []Task{}
	return true
}

// Export renders the project in the literal plan-text format: a "Day n:"
// header per day, one "- task" line per task, days separated by a blank
// line. Done state is intentionally not preserved; re-parsing an export
// reproduces the same task texts per day.
func (p *Project) Export() string {
	var b strings.Builder
	for d := 0; d < Days; d++ {
		if d > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Day %d:\n", d+1)
		for _, t := range p.Tasks[d] {
			fmt.Fprintf(&b, "- %s\n", t.Text)
		}
	}
	return b.String()
}

// Percent reports the project's completion percentage.
func (p *Project) Percent() int {
	return Percent(p.Tasks)
}
