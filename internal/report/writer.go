package report

import (
	"io"

	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

// Writer defines the interface for summary output.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.Summary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *model.Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// statusText describes what happened to the document.
func statusText(s *model.Summary) string {
	switch {
	case s.Note != "":
		return "Skipped - " + s.Note
	case s.Written:
		return "Updated"
	case s.Changed:
		return "Changed (dry run, not written)"
	default:
		return "Unchanged"
	}
}

// columnsText describes how the enrichment columns were handled.
func columnsText(s *model.Summary) string {
	if s.ColumnsInserted {
		return "inserted"
	}
	return "updated in place"
}
