package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ishandutta2007/Tops-of-Github/internal/geo"
	"github.com/ishandutta2007/Tops-of-Github/internal/link"
	"github.com/ishandutta2007/Tops-of-Github/internal/model"
	"github.com/ishandutta2007/Tops-of-Github/internal/table"
)

const (
	// DefaultHeaderFragment identifies the leaderboard header line.
	DefaultHeaderFragment = "| Ranking | Project Name |"

	// DefaultAnchorColumn is the column after which new columns are inserted.
	DefaultAnchorColumn = "Open Issues"

	// OwnerTypeColumn holds the owner classification.
	OwnerTypeColumn = "Owner Type"

	// CountryColumn holds the inferred country.
	CountryColumn = "Country"
)

// Resolver resolves an owner identity. *owner.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, identity string) model.Owner
}

// Stats describes what one Enrich call found and changed.
type Stats struct {
	TableFound      bool
	ColumnsInserted bool
	Rows            int
	RowsWithOwner   int
	RowsRepaired    int
	// Skipped explains why the document was returned unchanged, if it was.
	Skipped string
}

// Enricher fills the owner columns of a leaderboard table.
type Enricher struct {
	resolver  Resolver
	extractor *link.Extractor
	fragment  string
	anchor    string
	logger    *slog.Logger
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithHeaderFragment sets the text that identifies the header line.
func WithHeaderFragment(fragment string) Option {
	return func(e *Enricher) {
		e.fragment = fragment
	}
}

// WithAnchorColumn sets the column after which new columns are inserted.
func WithAnchorColumn(name string) Option {
	return func(e *Enricher) {
		e.anchor = name
	}
}

// WithExtractor sets the owner link extractor.
func WithExtractor(x *link.Extractor) Option {
	return func(e *Enricher) {
		e.extractor = x
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Enricher that resolves owners with r.
func New(r Resolver, opts ...Option) *Enricher {
	e := &Enricher{
		resolver:  r,
		extractor: link.NewExtractor(),
		fragment:  DefaultHeaderFragment,
		anchor:    DefaultAnchorColumn,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich returns doc with the owner columns inserted or refreshed.
//
// A missing table or anchor column is not an error: the document is
// returned unchanged and Stats.Skipped says why. The only error is context
// cancellation, in which case the document is also returned unchanged.
func (e *Enricher) Enrich(ctx context.Context, doc string) (string, Stats, error) {
	var stats Stats

	lines, eol := table.SplitLines(doc)
	tbl, err := table.Locate(lines, e.fragment)
	if err != nil {
		stats.Skipped = "table not found"
		e.logger.Warn("leaderboard table not found", slog.String("header", e.fragment))
		return doc, stats, nil
	}
	stats.TableFound = true
	stats.Rows = len(tbl.Rows)

	spec := table.UpsertSpec{
		Anchor:  e.anchor,
		Columns: []string{OwnerTypeColumn, CountryColumn},
	}
	res, err := tbl.Upsert(spec, func(row table.Row) []string {
		if ctx.Err() != nil {
			return nil
		}
		identity, ok := e.extractor.Owner(row.Raw)
		if !ok {
			e.logger.Debug("row has no owner link", slog.Int("line", row.Line+1))
			return nil
		}
		stats.RowsWithOwner++
		o := e.resolver.Resolve(ctx, identity)
		return []string{o.Kind.String(), geo.Infer(o.Location)}
	})
	if err != nil {
		if errors.Is(err, table.ErrColumnNotFound) {
			stats.Skipped = fmt.Sprintf("column %q not found", e.anchor)
			e.logger.Warn("anchor column not found", slog.String("column", e.anchor))
			return doc, stats, nil
		}
		return doc, stats, fmt.Errorf("failed to update table: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return doc, stats, fmt.Errorf("enrichment interrupted: %w", err)
	}

	stats.ColumnsInserted = len(res.Inserted) > 0
	stats.RowsRepaired = res.Repaired
	if res.Repaired > 0 {
		e.logger.Warn("rows did not match the header width and were repaired",
			slog.Int("rows", res.Repaired))
	}

	return table.JoinLines(table.Splice(lines, tbl), eol), stats, nil
}
