package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

// SimpleWriter outputs human-readable text summaries for terminal display.
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with nothing to report are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeTable(&sb, summary)
	w.writeCountries(&sb, summary)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

func writeRule(sb *strings.Builder, ch, title string) {
	sb.WriteString(strings.Repeat(ch, 70))
	sb.WriteString("\n")
	if title != "" {
		sb.WriteString(title)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(ch, 70))
		sb.WriteString("\n\n")
	}
}

// writeHeader writes the run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, s *model.Summary) {
	sb.WriteString("\n")
	writeRule(sb, "=", "                         TOPS RUN SUMMARY")

	fmt.Fprintf(sb, "Command:   %s\n", s.Command)
	fmt.Fprintf(sb, "Document:  %s\n", s.Document)
	if w.verbose {
		fmt.Fprintf(sb, "Started:   %s\n", s.StartedAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(sb, "Duration:  %s\n", s.Duration)
	}
	fmt.Fprintf(sb, "Status:    %s\n", statusText(s))
	sb.WriteString("\n")
}

// writeTable writes the enrichment counters.
func (w *SimpleWriter) writeTable(sb *strings.Builder, s *model.Summary) {
	if s.Rows == 0 && !w.showEmpty {
		return
	}

	writeRule(sb, "-", "TABLE")
	fmt.Fprintf(sb, "  Rows:             %d\n", s.Rows)
	fmt.Fprintf(sb, "  Rows with owner:  %d\n", s.RowsWithOwner)
	fmt.Fprintf(sb, "  Owner lookups:    %d\n", s.Lookups)
	fmt.Fprintf(sb, "  Unknown owners:   %d\n", s.UnknownOwners)
	if w.verbose || s.RowsRepaired > 0 {
		fmt.Fprintf(sb, "  Rows repaired:    %d\n", s.RowsRepaired)
	}
	if s.TableFound {
		fmt.Fprintf(sb, "  Columns:          %s\n", columnsText(s))
	}
	sb.WriteString("\n")
}

// writeCountries writes the distribution with one line per slice.
func (w *SimpleWriter) writeCountries(sb *strings.Builder, s *model.Summary) {
	if len(s.Slices) == 0 && !w.showEmpty {
		return
	}

	writeRule(sb, "-", "COUNTRIES")
	if len(s.Slices) == 0 {
		sb.WriteString("  No countries to chart\n\n")
		return
	}

	total := model.TotalCount(s.Slices)
	width := 0
	for _, sl := range s.Slices {
		width = max(width, len(sl.Label))
	}
	for _, sl := range s.Slices {
		fmt.Fprintf(sb, "  %-*s %5d  %5.1f%%\n", width, sl.Label, sl.Count, sl.Percent(total))
	}
	if s.Chart != "" {
		fmt.Fprintf(sb, "\n  Chart: %s\n", s.Chart)
	}
	sb.WriteString("\n")
}

// writeFooter writes the summary footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	writeRule(sb, "=", "")
}
