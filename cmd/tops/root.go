package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for tops.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tops",
		Short: "Enrich GitHub leaderboard READMEs with owner type and country",
		Long: `tops maintains the leaderboard table of a Markdown README.

The enrich command adds "Owner Type" and "Country" columns after the
"Open Issues" column, filled from the GitHub user and organization APIs.
The chart command counts repositories per owner country, renders a donut
chart image and links it from the README. Both are safe to re-run.

Set GITHUB_TOKEN to raise the GitHub API rate limit.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	// Add subcommands
	cmd.AddCommand(NewEnrichCmd())
	cmd.AddCommand(NewChartCmd())
	cmd.AddCommand(NewUpdateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
