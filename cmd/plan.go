package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhabedank/daybyday/internal/core"
	"github.com/dhabedank/daybyday/internal/session"
	"github.com/dhabedank/daybyday/internal/tui"
)

var (
	planConstraints string
	planOffline     bool
)

// PlanCmd groups the plan lifecycle commands.
var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create, open, and manage 8-day plans",
}

var planNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Generate a new 8-day plan for a goal",
	Long: `Generate a new 8-day plan.

The title describes the goal (e.g. "Learn Python basics"). The AI service
produces a day-by-day breakdown; when the service is unavailable a scripted
plan is substituted so you always get something editable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlanNew,
}

var planSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a snapshot of the current plan to history",
	Args:  cobra.NoArgs,
	RunE:  runPlanSave,
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current plan",
	Args:  cobra.NoArgs,
	RunE:  runPlanShow,
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	Args:  cobra.NoArgs,
	RunE:  runPlanList,
}

var planOpenCmd = &cobra.Command{
	Use:   "open <title>",
	Short: "Open a saved plan for editing",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlanOpen,
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a saved plan",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlanDelete,
}

func init() {
	planNewCmd.Flags().StringVarP(&planConstraints, "constraints", "c", "", "Constraints for the plan (time, budget, etc.)")
	planNewCmd.Flags().BoolVar(&planOffline, "offline", false, "Skip the AI call and use the scripted plan")

	PlanCmd.AddCommand(planNewCmd, planSaveCmd, planShowCmd, planListCmd, planOpenCmd, planDeleteCmd)
}

func runPlanNew(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return fmt.Errorf("plan title is required")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}

	var raw string
	usedFallback := true
	if planOffline {
		raw = core.FallbackPlan(title, planConstraints)
	} else {
		gen := env.generator()
		examples := fewShotExamples(env)
		prompt := core.BuildPlanPrompt(title, planConstraints, examples)
		err := tui.RunWithSpinner("Generating 8-day plan", env.modelLabel(), len(prompt), func() error {
			raw, usedFallback = gen.GeneratePlan(context.Background(), title, planConstraints, examples)
			return nil
		})
		if err != nil {
			return err
		}
		if usedFallback {
			fmt.Println(tui.WarningStyle.Render("!") + " " + gen.Notice())
		}
	}

	p := core.NewProject(title, planConstraints)
	p.ApplyGeneratedPlan(raw, time.Now().UTC())

	if err := env.projects.Append(env.user, *p); err != nil {
		return err
	}
	if err := env.session.Update(func(s *session.Session) {
		s.Draft = p
		s.Tab = core.TabPlanner
	}); err != nil {
		return err
	}

	fmt.Println(tui.RenderBoard(p))
	return nil
}

// fewShotExamples turns the most recent saved plan into a prompt example:
// the idea, the text that was generated for it, and the plan as the user
// left it after editing.
func fewShotExamples(env *appEnv) []core.PlanExample {
	latest, ok := env.projects.LoadLatest(env.user)
	if !ok || strings.TrimSpace(latest.RawPlan) == "" {
		return nil
	}
	return []core.PlanExample{{
		Idea:      latest.Title,
		Generated: latest.RawPlan,
		Edited:    latest.Export(),
	}}
}

func runPlanSave(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	p, err := env.draft()
	if err != nil {
		return err
	}
	if err := env.projects.Append(env.user, *p); err != nil {
		return err
	}
	fmt.Printf("%s Saved snapshot of %q\n", tui.SuccessStyle.Render("✓"), p.Title)
	return nil
}

func runPlanShow(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	p, err := env.draft()
	if err != nil {
		return err
	}
	fmt.Println(tui.RenderBoard(p))
	return nil
}

func runPlanList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	if err := env.session.SetTab(core.TabHome); err != nil {
		return err
	}

	titles := env.projects.Titles(env.user)
	if len(titles) == 0 {
		fmt.Println(tui.HelpStyle.Render("No plans yet. Create one with 'daybyday plan new'."))
		return nil
	}
	for _, title := range titles {
		p, _ := env.projects.LatestByTitle(env.user, title)
		when := ""
		if p.GeneratedAt != nil {
			when = p.GeneratedAt.Format("2006-01-02")
		}
		fmt.Printf("%s  %s  %s\n",
			tui.TitleStyle.Render(title),
			tui.RenderProgressBar(p.Percent()),
			tui.HelpStyle.Render(when),
		)
	}
	return nil
}

func runPlanOpen(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	env, err := openEnv()
	if err != nil {
		return err
	}
	p, ok := env.projects.LatestByTitle(env.user, title)
	if !ok {
		return fmt.Errorf("no plan named %q", title)
	}
	if err := env.session.Update(func(s *session.Session) {
		s.Draft = &p
		s.Tab = core.TabPlanner
	}); err != nil {
		return err
	}
	fmt.Println(tui.RenderBoard(&p))
	return nil
}

func runPlanDelete(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	env, err := openEnv()
	if err != nil {
		return err
	}
	if err := env.projects.Delete(env.user, title); err != nil {
		return err
	}

	// Drop the draft too if it pointed at the deleted plan.
	if d := env.session.Session().Draft; d != nil && d.Title == title {
		if err := env.session.SetDraft(nil); err != nil {
			return err
		}
	}
	fmt.Printf("%s Deleted %q\n", tui.SuccessStyle.Render("✓"), title)
	return nil
}
