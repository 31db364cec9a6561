package enrich

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

const readme = `# Top 100 Stars in Go

| Ranking | Project Name | Stars | Open Issues | Description |
| ------- | ------------ | ----- | ----------- | ----------- |
| 1 | [go](https://github.com/golang/go) | 120000 | 9000 | The Go language |
| 2 | [hugo](https://github.com/gohugoio/hugo) | 70000 | 600 | Static sites |
| 3 | [lonely](https://github.com/ghost/lonely) | 10 | 0 | Gone |
| 4 | no link here | 1 | 0 | - |

*Last Automatic Update: 2024-01-01*
`

const enriched = `# Top 100 Stars in Go

| Ranking | Project Name | Stars | Open Issues | Owner Type | Country | Description |
| ------- | ------------ | ----- | ----------- | --- | --- | ----------- |
| 1 | [go](https://github.com/golang/go) | 120000 | 9000 | Organization | USA | The Go language |
| 2 | [hugo](https://github.com/gohugoio/hugo) | 70000 | 600 | Organization | Unknown | Static sites |
| 3 | [lonely](https://github.com/ghost/lonely) | 10 | 0 | Unknown | Unknown | Gone |
| 4 | no link here | 1 | 0 |  |  | - |

*Last Automatic Update: 2024-01-01*
`

func strPtr(s string) *string { return &s }

// stubResolver answers from a fixed map and counts calls per identity.
type stubResolver struct {
	owners map[string]model.Owner
	calls  map[string]int
}

func newStubResolver() *stubResolver {
	return &stubResolver{
		owners: map[string]model.Owner{
			"golang":    {Identity: "golang", Kind: model.OwnerOrganization, Location: strPtr("Mountain View, CA, United States")},
			"gohugoio":  {Identity: "gohugoio", Kind: model.OwnerOrganization},
			"octocat":   {Identity: "octocat", Kind: model.OwnerUser, Location: strPtr("london")},
			"localuser": {Identity: "localuser", Kind: model.OwnerUser, Location: strPtr("Paris, France")},
		},
		calls: map[string]int{},
	}
}

func (s *stubResolver) Resolve(_ context.Context, identity string) model.Owner {
	s.calls[identity]++
	if o, ok := s.owners[identity]; ok {
		return o
	}
	return model.UnknownOwner(identity)
}

func newTestEnricher(r Resolver, opts ...Option) *Enricher {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(r, opts...)
}

// TestEnrich tests column insertion on a fresh document.
func TestEnrich(t *testing.T) {
	t.Parallel()

	got, stats, err := newTestEnricher(newStubResolver()).Enrich(context.Background(), readme)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(enriched, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	want := Stats{TableFound: true, ColumnsInserted: true, Rows: 4, RowsWithOwner: 3}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

// TestEnrichIdempotent tests that a second run changes nothing.
func TestEnrichIdempotent(t *testing.T) {
	t.Parallel()

	e := newTestEnricher(newStubResolver())
	once, _, err := e.Enrich(context.Background(), readme)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, stats, err := e.Enrich(context.Background(), once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second run changed the document (-first +second):\n%s", diff)
	}
	if stats.ColumnsInserted {
		t.Error("expected columns to be updated in place on the second run")
	}
	if strings.Count(twice, "Owner Type") != 1 {
		t.Errorf("expected exactly one Owner Type column, got:\n%s", twice)
	}
}

// TestEnrichRefreshesValues tests that changed owner data is written in place.
func TestEnrichRefreshesValues(t *testing.T) {
	t.Parallel()

	r := newStubResolver()
	e := newTestEnricher(r)
	r.owners["gohugoio"] = model.Owner{Identity: "gohugoio", Kind: model.OwnerOrganization, Location: strPtr("Berlin")}

	got, _, err := e.Enrich(context.Background(), enriched)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Replace(enriched,
		"| 70000 | 600 | Organization | Unknown |",
		"| 70000 | 600 | Organization | Germany |", 1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

// TestEnrichUnchanged tests the no-op paths.
func TestEnrichUnchanged(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		doc     string
		skipped string
	}{
		{
			name:    "no table",
			doc:     "# Nothing here\n\nJust prose.\n",
			skipped: "table not found",
		},
		{
			name:    "no anchor column",
			doc:     "| Ranking | Project Name | Stars |\n| - | - | - |\n| 1 | [a](https://github.com/a/a) | 3 |\n",
			skipped: `column "Open Issues" not found`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := newStubResolver()
			got, stats, err := newTestEnricher(r).Enrich(context.Background(), tc.doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.doc {
				t.Errorf("expected document unchanged, got:\n%s", got)
			}
			if stats.Skipped != tc.skipped {
				t.Errorf("expected skipped %q, got %q", tc.skipped, stats.Skipped)
			}
			if len(r.calls) != 0 {
				t.Errorf("expected no owner lookups, got %v", r.calls)
			}
		})
	}
}

// TestEnrichPreservesCRLF tests line ending preservation.
func TestEnrichPreservesCRLF(t *testing.T) {
	t.Parallel()

	doc := strings.ReplaceAll(readme, "\n", "\r\n")
	got, _, err := newTestEnricher(newStubResolver()).Enrich(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.ReplaceAll(enriched, "\n", "\r\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

// TestEnrichMixedLineEndings tests a mostly-LF document with a CRLF line.
func TestEnrichMixedLineEndings(t *testing.T) {
	t.Parallel()

	doc := "# Title\r\n" + readme
	got, stats, err := newTestEnricher(newStubResolver()).Enrich(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Rows != 4 {
		t.Errorf("expected 4 rows, got %d", stats.Rows)
	}
	if diff := cmp.Diff("# Title\r\n"+enriched, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
	if in, out := strings.Count(doc, "\n"), strings.Count(got, "\n"); in != out {
		t.Errorf("line count changed: in=%d out=%d", in, out)
	}
}

// TestEnrichCustomHeader tests a non-default header fragment and anchor.
func TestEnrichCustomHeader(t *testing.T) {
	t.Parallel()

	doc := "| Rank | Repo | Issues |\n|---|---|---|\n| 1 | <https://github.com/octocat/hello> | 2 |\n"
	want := "| Rank | Repo | Issues | Owner Type | Country |\n| --- | --- | --- | --- | --- |\n| 1 | <https://github.com/octocat/hello> | 2 | User | UK |\n"

	e := newTestEnricher(newStubResolver(),
		WithHeaderFragment("| Rank | Repo |"),
		WithAnchorColumn("Issues"))
	got, _, err := e.Enrich(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

// TestEnrichCanceled tests that cancellation leaves the document untouched.
func TestEnrichCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newStubResolver()
	got, _, err := newTestEnricher(r).Enrich(ctx, readme)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got != readme {
		t.Error("expected document unchanged after cancellation")
	}
	if len(r.calls) != 0 {
		t.Errorf("expected no lookups, got %v", r.calls)
	}
}
