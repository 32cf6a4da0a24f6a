package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhabedank/daybyday/internal/core"
	"github.com/dhabedank/daybyday/internal/tui"
)

// ChatCmd talks to the planning assistant. With no message it prints the
// transcript.
var ChatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with the planning assistant",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	if err := env.session.SetTab(core.TabChat); err != nil {
		return err
	}

	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return printTranscript(env)
	}

	// The transcript sent to the assistant excludes the new message; the
	// prompt builder appends it itself.
	transcript := env.session.Session().Transcript
	gen := env.generator()

	var reply string
	usedFallback := true
	err = tui.RunWithSpinner("Thinking", env.modelLabel(), len(message), func() error {
		reply, usedFallback = gen.Chat(context.Background(), transcript, message)
		return nil
	})
	if err != nil {
		return err
	}

	if err := env.session.AppendMessage(core.RoleUser, message); err != nil {
		return err
	}
	if err := env.session.AppendMessage(core.RoleAssistant, reply); err != nil {
		return err
	}

	if usedFallback {
		fmt.Println(tui.WarningStyle.Render("!") + " " + gen.Notice())
	}
	fmt.Println(reply)
	return nil
}

func printTranscript(env *appEnv) error {
	transcript := env.session.Session().Transcript
	if len(transcript) == 0 {
		fmt.Println(tui.HelpStyle.Render("No messages yet. Say something: daybyday chat \"how do I start?\""))
		return nil
	}
	for _, m := range transcript {
		label := tui.SelectedStyle.Render("you")
		if m.Role == core.RoleAssistant {
			label = tui.ModelStyle.Render("daybyday")
		}
		fmt.Printf("%s  %s\n%s\n\n", label, tui.HelpStyle.Render(m.Time.Format("Jan 2 15:04")), m.Text)
	}
	return nil
}
