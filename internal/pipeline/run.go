package pipeline

import (
	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

// Run is the state shared by the steps of one pipeline execution.
type Run struct {
	// Path is the document path.
	Path string

	// Original is the document as read from disk.
	Original string

	// Content is the document as transformed so far.
	Content string

	// Counts is the per-country tally.
	Counts map[string]int

	// Slices is the chart distribution derived from Counts.
	Slices []model.Slice

	// NoData is set when there is no table or column to work on; later
	// steps skip their work.
	NoData bool

	// Performed lists the steps that completed.
	Performed []string

	// Summary collects what the run did for reporting.
	Summary *model.Summary
}

// NewRun creates the run state for the given command and document.
func NewRun(command, path string) *Run {
	return &Run{
		Path:    path,
		Summary: model.NewSummary(command, path),
	}
}

// skip marks the run as having nothing to do, with a reason for the report.
func (r *Run) skip(note string) {
	r.NoData = true
	if r.Summary.Note == "" {
		r.Summary.Note = note
	}
}
