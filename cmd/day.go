package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhabedank/daybyday/internal/core"
	"github.com/dhabedank/daybyday/internal/session"
	"github.com/dhabedank/daybyday/internal/tui"
)

// DayCmd groups whole-day operations on the current plan.
var DayCmd = &cobra.Command{
	Use:   "day",
	Short: "Regenerate or clear whole days of the current plan",
}

var dayRegenCmd = &cobra.Command{
	Use:   "regen <day>",
	Short: "Regenerate one day's tasks with the AI service",
	Args:  cobra.ExactArgs(1),
	RunE:  runDayRegen,
}

var dayClearCmd = &cobra.Command{
	Use:   "clear <day>",
	Short: "Remove all tasks from a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runDayClear,
}

func init() {
	DayCmd.AddCommand(dayRegenCmd, dayClearCmd)
}

func runDayRegen(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args[0])
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	p, err := env.draft()
	if err != nil {
		return err
	}

	gen := env.generator()
	prompt := core.BuildDayPrompt(p, day)

	var lines []string
	usedFallback := true
	err = tui.RunWithSpinner(fmt.Sprintf("Regenerating Day %d", day+1), env.modelLabel(), len(prompt), func() error {
		lines, usedFallback = gen.RegenerateDayLines(context.Background(), p, day)
		return nil
	})
	if err != nil {
		return err
	}
	if usedFallback {
		fmt.Println(tui.WarningStyle.Render("!") + " " + gen.Notice())
	}

	if err := env.session.Update(func(s *session.Session) {
		p.RegenerateDay(day, lines)
	}); err != nil {
		return err
	}

	fmt.Printf("%s\n", tui.DayStyle.Render(fmt.Sprintf("Day %d", day+1)))
	for _, t := range p.Tasks[day] {
		fmt.Printf("  [ ] %s %s\n", tui.HelpStyle.Render(fmt.Sprintf("#%d", t.ID)), t.Text)
	}
	return nil
}

func runDayClear(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args[0])
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	p, err := env.draft()
	if err != nil {
		return err
	}

	if err := env.session.Update(func(s *session.Session) {
		p.ClearDay(day)
	}); err != nil {
		return err
	}
	fmt.Printf("%s Cleared Day %d\n", tui.SuccessStyle.Render("✓"), day+1)
	return nil
}
