package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// callDoneMsg carries the result of the background call.
type callDoneMsg struct {
	err error
}

// callModel animates a spinner while one generation call runs.
type callModel struct {
	spinner    spinner.Model
	label      string
	model      string
	inputChars int
	start      time.Time
	err        error
	done       bool
	run        func() error
}

func newCallModel(label, model string, inputChars int, run func() error) callModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return callModel{
		spinner:    s,
		label:      label,
		model:      model,
		inputChars: inputChars,
		start:      time.Now(),
		run:        run,
	}
}

func (m callModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return callDoneMsg{err: m.run()} },
	)
}

func (m callModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		// The call has no cancellation; keys are ignored until it returns.
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m callModel) View() string {
	if m.done {
		return ""
	}
	elapsed := time.Since(m.start).Truncate(time.Second)
	return fmt.Sprintf("%s %s  %s  %s  ~%s input\n",
		m.spinner.View(),
		DayStyle.Render(m.label),
		ModelStyle.Render(m.model),
		HelpStyle.Render(elapsed.String()),
		FormatTokens(EstimateTokens(m.inputChars)),
	)
}

// RunWithSpinner runs fn while showing an animated status line. On a
// non-interactive stdout it degrades to plain start/done lines.
func RunWithSpinner(label, model string, inputChars int, fn func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(RenderCallStart(label, model, inputChars))
		start := time.Now()
		err := fn()
		fmt.Println(RenderCallDone(label, time.Since(start)))
		return err
	}

	p := tea.NewProgram(newCallModel(label, model, inputChars, fn))
	final, err := p.Run()
	if err != nil {
		return err
	}
	return final.(callModel).err
}

// RenderCallStart returns a string for call start (non-interactive mode).
func RenderCallStart(label, model string, inputChars int) string {
	return fmt.Sprintf("%s %s  %s  ~%s input tokens",
		SpinnerStyle.Render("→"),
		DayStyle.Render(label),
		ModelStyle.Render(model),
		FormatTokens(EstimateTokens(inputChars)),
	)
}

// RenderCallDone returns a string for call completion (non-interactive mode).
func RenderCallDone(label string, duration time.Duration) string {
	return fmt.Sprintf("%s %s  %s",
		SuccessStyle.Render("✓"),
		DayStyle.Render(label),
		HelpStyle.Render(duration.Truncate(time.Second).String()),
	)
}
