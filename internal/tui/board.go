package tui

import (
	"fmt"
	"strings"

	"github.com/dhabedank/daybyday/internal/core"
)

const progressBarWidth = 24

// RenderBoard renders a project's eight days with task states and the
// overall completion bar.
func RenderBoard(p *core.Project) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(p.Title))
	b.WriteString("\n")
	if p.Constraints != "" {
		b.WriteString(HelpStyle.Render(p.Constraints))
		b.WriteString("\n")
	}
	b.WriteString(RenderProgressBar(p.Percent()))
	b.WriteString("\n")

	for d := 0; d < core.Days; d++ {
		fmt.Fprintf(&b, "\n%s\n", DayStyle.Render(fmt.Sprintf("Day %d", d+1)))
		if len(p.Tasks[d]) == 0 {
			b.WriteString(HelpStyle.Render("  no tasks"))
			b.WriteString("\n")
			continue
		}
		for _, t := range p.Tasks[d] {
			mark := "[ ]"
			text := t.Text
			if t.Done {
				mark = SuccessStyle.Render("[x]")
				text = DoneStyle.Render(text)
			}
			fmt.Fprintf(&b, "  %s %s %s\n", mark, HelpStyle.Render(fmt.Sprintf("#%d", t.ID)), text)
		}
	}
	return b.String()
}

// RenderProgressBar renders a fixed-width completion bar like
// "████████░░░░ 42%".
func RenderProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressBarWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return fmt.Sprintf("%s %d%%", SuccessStyle.Render(bar), percent)
}
