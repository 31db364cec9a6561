package main

import (
	"github.com/spf13/cobra"
)

// NewChartCmd creates the chart command.
func NewChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw the owner country distribution and link it from the document",
		Long: `Chart counts the rows of the leaderboard table per value of the "Country"
column, merges countries below the threshold share into "Other", renders a
donut chart PNG and places a "Repository Owner Country Distribution"
section with the image right after the table.

The section is replaced in place on later runs. Run enrich first; without a
Country column there is nothing to draw and nothing is written.

Examples:
  # Chart README.md into country_distribution.png
  tops chart

  # Write the image elsewhere and merge everything under 5%
  tops chart -i assets/countries.png --threshold 5`,
		Args: cobra.NoArgs,
		RunE: runPipelineCmd(commandChart),
	}

	addDocumentFlags(cmd)
	addChartFlags(cmd)

	return cmd
}
