package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Persistent flags shared by every command.
	flagConfig  string
	flagUser    string
	flagDataDir string
)

// NewRootCmd builds the daybyday command tree.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "daybyday",
		Short:   "AI 8-day planner: generate a day-by-day plan and track it",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ./.daybyday.yaml or ~/.daybyday.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User name (default: config value, then \"local\")")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default: $DATA_DIR, then \"daybyday_data\")")

	rootCmd.AddCommand(
		PlanCmd,
		TaskCmd,
		DayCmd,
		ExportCmd,
		ChatCmd,
		FeedCmd,
		SetupCmd,
	)
	return rootCmd
}
