package main

import (
	"github.com/spf13/cobra"
)

// NewEnrichCmd creates the enrich command.
func NewEnrichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Add Owner Type and Country columns to the leaderboard table",
		Long: `Enrich locates the leaderboard table in the document and makes sure it has
"Owner Type" and "Country" columns right after "Open Issues".

For each row, the repository owner is taken from the first GitHub link in
the row and looked up as a user, then as an organization. The country is
inferred from the account's free-text location. Each owner is looked up
at most once per run. Re-running updates the columns in place.

A missing table or anchor column is not an error: the document is left
untouched and the summary says why.

Examples:
  # Enrich README.md in the current directory
  tops enrich

  # Enrich another document with a token for a higher rate limit
  GITHUB_TOKEN=ghp_xxx tops enrich -f docs/TOP.md

  # Show what would change without writing
  tops enrich --dry-run`,
		Args: cobra.NoArgs,
		RunE: runPipelineCmd(commandEnrich),
	}

	addDocumentFlags(cmd)
	addGitHubFlags(cmd)

	return cmd
}
