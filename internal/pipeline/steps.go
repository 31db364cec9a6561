package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ishandutta2007/Tops-of-Github/internal/chart"
	"github.com/ishandutta2007/Tops-of-Github/internal/document"
	"github.com/ishandutta2007/Tops-of-Github/internal/enrich"
	"github.com/ishandutta2007/Tops-of-Github/internal/owner"
)

// ReadDocumentStep loads the whole document into the run.
// A read failure is the one fatal condition of every pipeline.
type ReadDocumentStep struct{}

// NewReadDocumentStep creates a ReadDocumentStep.
func NewReadDocumentStep() *ReadDocumentStep {
	return &ReadDocumentStep{}
}

// Name returns the step name.
func (s *ReadDocumentStep) Name() string {
	return "read_document"
}

// Do executes the read step.
func (s *ReadDocumentStep) Do(_ context.Context, run *Run) error {
	content, err := document.Read(run.Path)
	if err != nil {
		return err
	}
	run.Original = content
	run.Content = content
	return nil
}

// EnrichStep inserts or refreshes the owner columns of the table.
type EnrichStep struct {
	enricher *enrich.Enricher
	resolver *owner.Resolver
}

// NewEnrichStep creates an EnrichStep. The resolver, when given, is only
// consulted for lookup statistics.
func NewEnrichStep(e *enrich.Enricher, r *owner.Resolver) *EnrichStep {
	return &EnrichStep{enricher: e, resolver: r}
}

// Name returns the step name.
func (s *EnrichStep) Name() string {
	return "enrich_table"
}

// Do executes the enrichment step.
func (s *EnrichStep) Do(ctx context.Context, run *Run) error {
	if run.NoData {
		return nil
	}

	content, stats, err := s.enricher.Enrich(ctx, run.Content)
	if err != nil {
		return err
	}
	run.Content = content

	sum := run.Summary
	sum.TableFound = stats.TableFound
	sum.ColumnsInserted = stats.ColumnsInserted
	sum.Rows = stats.Rows
	sum.RowsWithOwner = stats.RowsWithOwner
	sum.RowsRepaired = stats.RowsRepaired
	if s.resolver != nil {
		rs := s.resolver.Stats()
		sum.Lookups = rs.Lookups
		sum.UnknownOwners = rs.Unknown
	}
	if stats.Skipped != "" {
		run.skip(stats.Skipped)
	}
	return nil
}

// TallyStep counts table rows per country and builds the distribution.
type TallyStep struct {
	fragment  string
	column    string
	threshold float64
	logger    *slog.Logger
}

// NewTallyStep creates a TallyStep.
func NewTallyStep(fragment, column string, threshold float64, logger *slog.Logger) *TallyStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &TallyStep{fragment: fragment, column: column, threshold: threshold, logger: logger}
}

// Name returns the step name.
func (s *TallyStep) Name() string {
	return "tally_countries"
}

// Do executes the tally step.
func (s *TallyStep) Do(_ context.Context, run *Run) error {
	if run.NoData {
		return nil
	}

	counts, err := chart.Tally(run.Content, s.fragment, s.column)
	if err != nil {
		if errors.Is(err, chart.ErrNoData) {
			s.logger.Warn("nothing to chart", "reason", err.Error())
			run.skip(err.Error())
			return nil
		}
		return err
	}
	run.Summary.TableFound = true
	run.Counts = counts
	run.Slices = chart.Distribution(counts, s.threshold)
	run.Summary.Slices = run.Slices
	if len(run.Slices) == 0 {
		s.logger.Warn("no country values to chart", "column", s.column)
		run.skip(fmt.Sprintf("column %q has no values", s.column))
	}
	return nil
}

// RenderChartStep draws the distribution and writes the image file.
type RenderChartStep struct {
	path   string
	opts   chart.RenderOptions
	dryRun bool
}

// NewRenderChartStep creates a RenderChartStep writing to path.
func NewRenderChartStep(path string, opts chart.RenderOptions, dryRun bool) *RenderChartStep {
	return &RenderChartStep{path: path, opts: opts, dryRun: dryRun}
}

// Name returns the step name.
func (s *RenderChartStep) Name() string {
	return "render_chart"
}

// Do executes the render step.
func (s *RenderChartStep) Do(_ context.Context, run *Run) error {
	if run.NoData {
		return nil
	}

	var buf bytes.Buffer
	if err := chart.RenderPNG(&buf, run.Slices, s.opts); err != nil {
		return err
	}
	run.Summary.Chart = s.path
	if s.dryRun {
		return nil
	}
	if err := document.WriteAtomic(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

// SpliceChartStep places the chart reference section in the document.
type SpliceChartStep struct {
	imagePath string
	fragment  string
}

// NewSpliceChartStep creates a SpliceChartStep. The image is referenced
// relative to the document.
func NewSpliceChartStep(imagePath, fragment string) *SpliceChartStep {
	return &SpliceChartStep{imagePath: imagePath, fragment: fragment}
}

// Name returns the step name.
func (s *SpliceChartStep) Name() string {
	return "splice_chart_section"
}

// Do executes the splice step.
func (s *SpliceChartStep) Do(_ context.Context, run *Run) error {
	if run.NoData {
		return nil
	}
	ref := document.RelativeRef(run.Path, s.imagePath)
	run.Content = document.SpliceSection(run.Content, document.NewSection(ref), s.fragment)
	return nil
}

// WriteDocumentStep writes the document back when it changed.
type WriteDocumentStep struct {
	dryRun bool
	logger *slog.Logger
}

// NewWriteDocumentStep creates a WriteDocumentStep.
func NewWriteDocumentStep(dryRun bool, logger *slog.Logger) *WriteDocumentStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &WriteDocumentStep{dryRun: dryRun, logger: logger}
}

// Name returns the step name.
func (s *WriteDocumentStep) Name() string {
	return "write_document"
}

// Do executes the write step. An unchanged document is not rewritten.
func (s *WriteDocumentStep) Do(_ context.Context, run *Run) error {
	run.Summary.Changed = run.Content != run.Original
	if !run.Summary.Changed {
		s.logger.Debug("document unchanged", "document", run.Path)
		return nil
	}
	if s.dryRun {
		s.logger.Debug("dry run, document not written", "document", run.Path)
		return nil
	}
	if err := document.WriteAtomic(run.Path, []byte(run.Content)); err != nil {
		return err
	}
	run.Summary.Written = true
	return nil
}
