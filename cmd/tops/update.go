package main

import (
	"github.com/spf13/cobra"
)

// NewUpdateCmd creates the update command, which enriches and charts in one
// pass so the document is written once.
func NewUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Enrich the table and refresh the chart in one run",
		Long: `Update runs enrich and chart back to back on the same document.
The document is read once and written once.

Examples:
  # Typical scheduled job
  GITHUB_TOKEN=$TOKEN tops update -f README.md -i country_distribution.png`,
		Args: cobra.NoArgs,
		RunE: runPipelineCmd(commandUpdate),
	}

	addDocumentFlags(cmd)
	addGitHubFlags(cmd)
	addChartFlags(cmd)

	return cmd
}
