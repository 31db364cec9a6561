package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/ishandutta2007/Tops-of-Github/internal/chart"
	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

// MarkdownWriter outputs summaries in Markdown format, suitable for a CI job
// summary or a pull request comment.
type MarkdownWriter struct {
	baseWriter

	// chartTitle is the title of the Mermaid pie.
	chartTitle string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithChartTitle sets the title of the Mermaid pie chart.
func WithChartTitle(title string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.chartTitle = title
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		chartTitle: chart.DefaultTitle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeTable(md, summary)
	w.writeCountries(md, summary)
	w.writeAlert(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the run information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s *model.Summary) {
	md.H1("Tops Run Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Command", "`" + s.Command + "`"},
			{"Document", "`" + s.Document + "`"},
			{"Started", s.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Status", statusText(s)},
		},
	})
	md.PlainText("")
}

// writeTable writes the enrichment counters.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, s *model.Summary) {
	if s.Rows == 0 {
		return
	}

	md.H2("Table")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Rows", strconv.Itoa(s.Rows)},
			{"Rows with owner", strconv.Itoa(s.RowsWithOwner)},
			{"Rows repaired", strconv.Itoa(s.RowsRepaired)},
			{"Owner lookups", strconv.Itoa(s.Lookups)},
			{"Unknown owners", strconv.Itoa(s.UnknownOwners)},
			{"Columns", columnsText(s)},
		},
	})
	md.PlainText("")
}

// writeCountries writes the distribution table and its Mermaid pie.
func (w *MarkdownWriter) writeCountries(md *markdown.Markdown, s *model.Summary) {
	if len(s.Slices) == 0 {
		return
	}

	md.H2("Country Distribution")
	md.PlainText("")

	total := model.TotalCount(s.Slices)
	rows := make([][]string, len(s.Slices))
	for i, sl := range s.Slices {
		rows[i] = []string{
			sl.Label,
			strconv.Itoa(sl.Count),
			fmt.Sprintf("%.1f%%", sl.Percent(total)),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Country", "Repositories", "Share"},
		Rows:   rows,
	})
	md.PlainText("")

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.MermaidPie(s.Slices, w.chartTitle))
	md.PlainText("")
}

// writeAlert writes a callout matching the outcome of the run.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s *model.Summary) {
	switch {
	case s.Note != "":
		md.Importantf("Nothing was done: %s.", s.Note)
	case s.UnknownOwners > 0:
		md.Warningf("%d owner(s) could not be resolved and are listed as Unknown.", s.UnknownOwners)
	case s.Changed && !s.Written:
		md.Note("Dry run: the document was not written.")
	case s.Written:
		md.Tip("The document was updated.")
	default:
		md.Note("The document is already up to date.")
	}
	md.PlainText("")
}

// writeFooter writes the summary footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [tops](https://github.com/ishandutta2007/Tops-of-Github)*")
}
