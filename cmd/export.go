package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhabedank/daybyday/internal/tui"
)

var exportPath string

// ExportCmd renders the current plan in the literal plan-text format.
// Done state is not preserved; the output re-parses to the same task
// texts per day.
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current plan as plain text",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	ExportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	p, err := env.draft()
	if err != nil {
		return err
	}

	text := p.Export()
	if exportPath == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(exportPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("%s Plan written to %s\n", tui.SuccessStyle.Render("✓"), exportPath)
	return nil
}
