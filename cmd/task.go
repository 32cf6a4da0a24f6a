package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhabedank/daybyday/internal/session"
	"github.com/dhabedank/daybyday/internal/tui"
)

// TaskCmd groups the single-task edit commands. Every mutation targets the
// live draft and is checkpointed immediately.
var TaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Edit tasks on the current plan",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <day> <text>",
	Short: "Add a task to a day",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTaskAdd,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <day> <id>",
	Short: "Toggle a task's done state",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskDone,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <day> <id> <text>",
	Short: "Replace a task's text",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runTaskEdit,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <day> <id>",
	Short: "Remove a task from a day",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskRm,
}

func init() {
	TaskCmd.AddCommand(taskAddCmd, taskDoneCmd, taskEditCmd, taskRmCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")

	env, err := openEnv()
	if err != nil {
		return err
	}
	p, err := env.draft()
	if err != nil {
		return err
	}

	var added bool
	var id int
	if err := env.session.Update(func(s *session.Session) {
		t, ok := p.AddTask(day, text)
		added, id = ok, t.ID
	}); err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("task text must not be empty")
	}
	fmt.Printf("%s Added task #%d to Day %d\n", tui.SuccessStyle.Render("✓"), id, day+1)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args[0])
	if err != nil {
		return err
	}
	id, err := idArg(args[1])
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

	var toggled bool
	if err := env.session.Update(func(s *session.Session) {
		toggled = p.ToggleTask(day, id)
	}); err != nil {
		return err
	}
	if !toggled {
		return fmt.Errorf("no task #%d on Day %d", id, day+1)
	}
	fmt.Printf("%s Day %d: %s\n", tui.SuccessStyle.Render("✓"), day+1, tui.RenderProgressBar(p.Percent()))
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args[0])
	if err != nil {
		return err
	}
	id, err := idArg(args[1])
	if err != nil {
		return err
	}
	text := strings.Join(args[2:], " ")

	env, err := openEnv()
	if err != nil {
		return err
	}
	p, err := env.draft()
	if err != nil {
		return err
	}

	var edited bool
	if err := env.session.Update(func(s *session.Session) {
		edited = p.EditTaskText(day, id, text)
	}); err != nil {
		return err
	}
	if !edited {
		return fmt.Errorf("no task #%d on Day %d (or empty text)", id, day+1)
	}
	fmt.Printf("%s Updated task #%d\n", tui.SuccessStyle.Render("✓"), id)
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args[0])
	if err != nil {
		return err
	}
	id, err := idArg(args[1])
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

	var removed bool
	if err := env.session.Update(func(s *session.Session) {
		removed = p.RemoveTask(day, id)
	}); err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no task #%d on Day %d", id, day+1)
	}
	fmt.Printf("%s Removed task #%d from Day %d\n", tui.SuccessStyle.Render("✓"), id, day+1)
	return nil
}
