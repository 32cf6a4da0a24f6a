package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhabedank/daybyday/internal/core"
	"github.com/dhabedank/daybyday/internal/tui"
)

var feedLimit int

// FeedCmd groups the shared-feed commands.
var FeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Post to and read the shared progress feed",
}

var feedPostCmd = &cobra.Command{
	Use:   "post <text>",
	Short: "Post an update; the assistant suggests follow-ups",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFeedPost,
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the feed, newest first",
	Args:  cobra.NoArgs,
	RunE:  runFeedList,
}

func init() {
	feedListCmd.Flags().IntVarP(&feedLimit, "limit", "n", 10, "Max entries to show (0 for all)")
	FeedCmd.AddCommand(feedPostCmd, feedListCmd)
}

func runFeedPost(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("post text is required")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	if err := env.session.SetTab(core.TabFeed); err != nil {
		return err
	}

	gen := env.generator()
	var suggestions []string
	usedFallback := true
	err = tui.RunWithSpinner("Fetching suggestions", env.modelLabel(), len(text), func() error {
		suggestions, usedFallback = gen.SuggestForPost(context.Background(), text)
		return nil
	})
	if err != nil {
		return err
	}
	if usedFallback {
		fmt.Println(tui.WarningStyle.Render("!") + " " + gen.Notice())
	}

	entry, err := env.feed.Post(env.user, text, suggestions)
	if err != nil {
		return err
	}

	fmt.Printf("%s Posted\n", tui.SuccessStyle.Render("✓"))
	for _, s := range entry.Suggestions {
		fmt.Printf("  %s %s\n", tui.ModelStyle.Render("→"), s)
	}
	return nil
}

func runFeedList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	if err := env.session.SetTab(core.TabFeed); err != nil {
		return err
	}

	entries := env.feed.List(feedLimit)
	if len(entries) == 0 {
		fmt.Println(tui.HelpStyle.Render("The feed is empty. Post with 'daybyday feed post'."))
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n%s\n",
			tui.SelectedStyle.Render(e.User),
			tui.HelpStyle.Render(e.Time.Format("Jan 2 15:04")),
			e.Text,
		)
		for _, s := range e.Suggestions {
			fmt.Printf("  %s %s\n", tui.ModelStyle.Render("→"), s)
		}
		fmt.Println()
	}
	return nil
}
