package model

import "time"

// Summary describes the outcome of one run of either pipeline.
// It is what the report writers print once a command finishes.
type Summary struct {
	// Command is the pipeline that ran ("enrich" or "chart").
	Command string `json:"command"`

	// Document is the path of the Markdown document.
	Document string `json:"document"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration"`

	// TableFound reports whether the target table was located.
	TableFound bool `json:"table_found"`

	// ColumnsInserted is true when the enrichment columns were added on this
	// run, false when they were updated in place (or nothing happened).
	ColumnsInserted bool `json:"columns_inserted"`

	// Rows is the number of data rows in the table.
	Rows int `json:"rows"`

	// RowsWithOwner is the number of rows carrying an extractable owner link.
	RowsWithOwner int `json:"rows_with_owner"`

	// RowsRepaired is the number of rows padded or folded to match the schema.
	RowsRepaired int `json:"rows_repaired"`

	// Lookups is the number of owner identities queried over the network.
	Lookups int `json:"lookups"`

	// UnknownOwners is the number of identities that resolved to OwnerUnknown.
	UnknownOwners int `json:"unknown_owners"`

	// Slices is the country distribution (chart runs only).
	Slices []Slice `json:"slices,omitempty"`

	// Chart is the path of the rendered image (chart runs only).
	Chart string `json:"chart,omitempty"`

	// Changed reports whether the document content differs from the input.
	Changed bool `json:"changed"`

	// Written reports whether the document was written back to disk.
	Written bool `json:"written"`

	// Note explains a no-op run (missing table, missing column, no data).
	Note string `json:"note,omitempty"`
}

// NewSummary creates a Summary for the given command and document.
func NewSummary(command, document string) *Summary {
	return &Summary{
		Command:   command,
		Document:  document,
		StartedAt: time.Now(),
	}
}
