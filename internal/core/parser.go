package core

import (
	"fmt"
	"strings"
)

// Limits applied when rescuing unstructured plan text.
const (
	commaRescueMax   = 3  // fragments taken when a day has no task lines
	commaFragmentMax = 80 // runes kept per rescued fragment
)

// ParsePlan turns raw generated plan text into the fixed eight-day task
// structure. It never fails: text with no recognizable structure is chunked
// evenly across the days, and a day whose segment yields no task lines is
// rescued by comma-splitting. Task IDs are assigned 0,1,2,... in the order
// tasks are encountered across Day 1..Day 8.
func ParsePlan(text string) DayTasks {
	segments := splitDaySegments(text)

	var days DayTasks
	nextID := 0
	for d := 0; d < Days; d++ {
		days[d] = []Task{}
		for _, line := range extractTaskLines(segments[d]) {
			days[d] = append(days[d], Task{ID: nextID, Text: line})
			nextID++
		}
	}
	return days
}

type dayMark struct {
	day    int // 1-based
	offset int
}

// splitDaySegments locates each "Day n" token and slices the text between
// consecutive found tokens in file order. Day numbers out of order are
// handled by slicing on offsets, not on the numeric labels. When no token
// is found at all the non-blank lines are chunked evenly across eight days.
func splitDaySegments(text string) [Days]string {
	var segments [Days]string

	var marks []dayMark
	for n := 1; n <= Days; n++ {
		if off := strings.Index(text, fmt.Sprintf("Day %d", n)); off >= 0 {
			marks = append(marks, dayMark{day: n, offset: off})
		}
	}

	if len(marks) == 0 {
		return chunkSegments(text)
	}

	// Sort by offset ascending. Eight elements at most.
	for i := 0; i < len(marks); i++ {
		for j := i + 1; j < len(marks); j++ {
			if marks[j].offset < marks[i].offset {
				marks[i], marks[j] = marks[j], marks[i]
			}
		}
	}

	for i, m := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].offset
		}
		segments[m.day-1] = text[m.offset:end]
	}
	return segments
}

// chunkSegments distributes the non-blank lines of unstructured text evenly
// across the eight days. Chunk size is max(1, lines/8); chunks beyond the
// eighth are discarded, days beyond the available chunks stay empty.
func chunkSegments(text string) [Days]string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	var segments [Days]string
	if len(lines) == 0 {
		return segments
	}

	chunk := len(lines) / Days
	if chunk < 1 {
		chunk = 1
	}
	for d := 0; d < Days; d++ {
		start := d * chunk
		if start >= len(lines) {
			break
		}
		end := start + chunk
		if end > len(lines) {
			end = len(lines)
		}
		segments[d] = strings.Join(lines[start:end], "\n")
	}
	return segments
}

// extractTaskLines pulls task texts out of one day's segment. Bullet lines
// win, then single-digit "1)" / "1." lines, then bare non-header lines. If
// nothing matched but the segment still has content, the segment is split
// on commas and up to three bounded fragments become tasks so salvageable
// content is never silently dropped.
func extractTaskLines(segment string) []string {
	if strings.TrimSpace(segment) == "" {
		return nil
	}

	var tasks []string
	rest := "" // leftover content kept for comma rescue
	keep := func(s string) {
		if rest != "" {
			rest += "\n"
		}
		rest += s
	}
	for _, raw := range strings.Split(segment, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "-"):
			if t := strings.TrimSpace(strings.TrimLeft(line, "- ")); t != "" {
				tasks = append(tasks, t)
			}
		case len(line) >= 2 && line[0] >= '0' && line[0] <= '9' && (line[1] == ')' || line[1] == '.'):
			if t := strings.TrimSpace(line[2:]); t != "" {
				tasks = append(tasks, t)
			}
		case isStructuralHeader(line):
			// "Day 3: rest, relax, recover" keeps its inline content
			if i := strings.Index(line, ":"); i >= 0 {
				if after := strings.TrimSpace(line[i+1:]); after != "" {
					keep(after)
				}
			}
		default:
			tasks = append(tasks, line)
			keep(line)
		}
	}

	if len(tasks) > 0 {
		return tasks
	}
	return commaRescue(rest)
}

func isStructuralHeader(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "day ") || strings.HasPrefix(lower, "day:") ||
		strings.HasPrefix(lower, "goal")
}

// commaRescue splits leftover content on commas and keeps the first few
// non-empty fragments, each truncated to a readable length.
func commaRescue(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	var tasks []string
	for _, frag := range strings.Split(content, ",") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		if r := []rune(frag); len(r) > commaFragmentMax {
			frag = string(r[:commaFragmentMax])
		}
		tasks = append(tasks, frag)
		if len(tasks) == commaRescueMax {
			break
		}
	}
	return tasks
}
