package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ishandutta2007/Tops-of-Github/internal/chart"
	"github.com/ishandutta2007/Tops-of-Github/internal/document"
	"github.com/ishandutta2007/Tops-of-Github/internal/enrich"
	"github.com/ishandutta2007/Tops-of-Github/internal/github"
	"github.com/ishandutta2007/Tops-of-Github/internal/model"
	"github.com/ishandutta2007/Tops-of-Github/internal/owner"
)

const fragment = "| Ranking | Project Name |"

const leaderboard = `# Top Go Projects

| Ranking | Project Name | Open Issues | Description |
| - | - | - | - |
| 1 | [go](https://github.com/golang/go) | 10 | lang |
| 2 | [x](https://github.com/octocat/x) | 2 | demo |
| 3 | [y](https://github.com/octocat/y) | 1 | again |

end
`

func strPtr(s string) *string { return &s }

// fakeDirectory answers lookups from fixed maps and counts requests.
type fakeDirectory struct {
	users    map[string]*github.Account
	orgs     map[string]*github.Account
	requests int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users: map[string]*github.Account{
			"octocat": {Login: "octocat", Type: "User", Location: strPtr("India")},
		},
		orgs: map[string]*github.Account{
			"golang": {Login: "golang", Type: "Organization", Location: strPtr("Germany")},
		},
	}
}

func (d *fakeDirectory) LookupUser(_ context.Context, login string) (*github.Account, error) {
	d.requests++
	if a, ok := d.users[login]; ok {
		return a, nil
	}
	return nil, github.ErrNotFound
}

func (d *fakeDirectory) LookupOrg(_ context.Context, login string) (*github.Account, error) {
	d.requests++
	if a, ok := d.orgs[login]; ok {
		return a, nil
	}
	return nil, github.ErrNotFound
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read document: %v", err)
	}
	return string(data)
}

func enrichPipeline(dir owner.Directory, dryRun bool) *Pipeline {
	logger := quietLogger()
	resolver := owner.NewResolver(dir, owner.NewCache(), owner.WithLogger(logger))
	enricher := enrich.New(resolver, enrich.WithLogger(logger))

	p := New(WithLogger(logger))
	p.AddSteps(
		NewReadDocumentStep(),
		NewEnrichStep(enricher, resolver),
		NewWriteDocumentStep(dryRun, logger),
	)
	return p
}

func chartPipeline(imagePath string, dryRun bool) *Pipeline {
	logger := quietLogger()
	opts := chart.DefaultRenderOptions()
	opts.Width, opts.Height = 300, 300

	p := New(WithLogger(logger))
	p.AddSteps(
		NewReadDocumentStep(),
		NewTallyStep(fragment, enrich.CountryColumn, chart.DefaultThreshold, logger),
		NewRenderChartStep(imagePath, opts, dryRun),
		NewSpliceChartStep(imagePath, fragment),
		NewWriteDocumentStep(dryRun, logger),
	)
	return p
}

// TestEnrichPipeline tests the enrichment pipeline against a document on disk.
func TestEnrichPipeline(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, leaderboard)
	dir := newFakeDirectory()
	run := NewRun("enrich", path)

	if err := enrichPipeline(dir, false).Execute(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readDoc(t, path)
	for _, line := range []string{
		"| Ranking | Project Name | Open Issues | Owner Type | Country | Description |",
		"| 1 | [go](https://github.com/golang/go) | 10 | Organization | Germany | lang |",
		"| 2 | [x](https://github.com/octocat/x) | 2 | User | India | demo |",
		"| 3 | [y](https://github.com/octocat/y) | 1 | User | India | again |",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("expected document to contain %q, got:\n%s", line, got)
		}
	}

	// golang: user miss then org hit; octocat: one user hit, then cached.
	if dir.requests != 3 {
		t.Errorf("expected 3 directory requests, got %d", dir.requests)
	}

	sum := run.Summary
	if !sum.TableFound || !sum.ColumnsInserted || !sum.Changed || !sum.Written {
		t.Errorf("unexpected summary flags %+v", sum)
	}
	if sum.Rows != 3 || sum.RowsWithOwner != 3 || sum.Lookups != 2 || sum.UnknownOwners != 0 {
		t.Errorf("unexpected summary counts %+v", sum)
	}

	t.Run("second run leaves the file untouched", func(t *testing.T) {
		again := NewRun("enrich", path)
		if err := enrichPipeline(newFakeDirectory(), false).Execute(context.Background(), again); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Summary.Changed || again.Summary.Written {
			t.Errorf("expected no change on second run, got %+v", again.Summary)
		}
		if diff := cmp.Diff(got, readDoc(t, path)); diff != "" {
			t.Errorf("document changed (-first +second):\n%s", diff)
		}
	})
}

// TestEnrichPipelineDryRun tests that a dry run reports but does not write.
func TestEnrichPipelineDryRun(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, leaderboard)
	run := NewRun("enrich", path)

	if err := enrichPipeline(newFakeDirectory(), true).Execute(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !run.Summary.Changed {
		t.Error("expected Changed to be true")
	}
	if run.Summary.Written {
		t.Error("expected Written to be false on a dry run")
	}
	if got := readDoc(t, path); got != leaderboard {
		t.Errorf("expected document to be untouched, got:\n%s", got)
	}
}

// TestEnrichPipelineNoTable tests the no-op path when the table is absent.
func TestEnrichPipelineNoTable(t *testing.T) {
	t.Parallel()

	const doc = "# Nothing here\n\njust prose\n"
	path := writeDoc(t, doc)
	dir := newFakeDirectory()
	run := NewRun("enrich", path)

	if err := enrichPipeline(dir, false).Execute(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !run.NoData {
		t.Error("expected NoData to be set")
	}
	if run.Summary.Note != "table not found" {
		t.Errorf("expected note %q, got %q", "table not found", run.Summary.Note)
	}
	if run.Summary.Written {
		t.Error("expected document not to be written")
	}
	if dir.requests != 0 {
		t.Errorf("expected no directory requests, got %d", dir.requests)
	}
}

// TestReadDocumentStepMissingFile tests that a read failure stops the run.
func TestReadDocumentStepMissingFile(t *testing.T) {
	t.Parallel()

	run := NewRun("enrich", filepath.Join(t.TempDir(), "missing.md"))
	err := enrichPipeline(newFakeDirectory(), false).Execute(context.Background(), run)
	if !errors.Is(err, document.ErrRead) {
		t.Fatalf("expected ErrRead, got %v", err)
	}
	if len(run.Performed) != 0 {
		t.Errorf("expected no performed steps, got %v", run.Performed)
	}
}

// TestChartPipeline tests tally, render and splice on an enriched document.
func TestChartPipeline(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, leaderboard)
	if err := enrichPipeline(newFakeDirectory(), false).Execute(context.Background(), NewRun("enrich", path)); err != nil {
		t.Fatalf("enrich failed: %v", err)
	}

	imagePath := filepath.Join(filepath.Dir(path), "country_distribution.png")
	run := NewRun("chart", path)
	if err := chartPipeline(imagePath, false).Execute(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCounts := map[string]int{"India": 2, "Germany": 1}
	if diff := cmp.Diff(wantCounts, run.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	wantSlices := []model.Slice{{Label: "India", Count: 2}, {Label: "Germany", Count: 1}}
	if diff := cmp.Diff(wantSlices, run.Summary.Slices); diff != "" {
		t.Errorf("slices mismatch (-want +got):\n%s", diff)
	}

	info, err := os.Stat(imagePath)
	if err != nil {
		t.Fatalf("expected chart image: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty chart image")
	}

	got := readDoc(t, path)
	section := "| 3 | [y](https://github.com/octocat/y) | 1 | User | India | again |\n\n" +
		"## Repository Owner Country Distribution\n\n" +
		"![Country Distribution](country_distribution.png)\n"
	if !strings.Contains(got, section) {
		t.Errorf("expected section after the table, got:\n%s", got)
	}
	if !run.Summary.Written {
		t.Error("expected document to be written")
	}

	t.Run("second run keeps a single section", func(t *testing.T) {
		again := NewRun("chart", path)
		if err := chartPipeline(imagePath, false).Execute(context.Background(), again); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Summary.Changed {
			t.Error("expected document to be unchanged on second run")
		}
		if n := strings.Count(readDoc(t, path), "## Repository Owner Country Distribution"); n != 1 {
			t.Errorf("expected one section heading, got %d", n)
		}
	})
}

// TestChartPipelineNoColumn tests the no-op path before enrichment.
func TestChartPipelineNoColumn(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, leaderboard)
	imagePath := filepath.Join(filepath.Dir(path), "country_distribution.png")
	run := NewRun("chart", path)

	if err := chartPipeline(imagePath, false).Execute(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !run.NoData {
		t.Error("expected NoData to be set")
	}
	if !strings.Contains(run.Summary.Note, "Country") {
		t.Errorf("expected note to name the missing column, got %q", run.Summary.Note)
	}
	if _, err := os.Stat(imagePath); !os.IsNotExist(err) {
		t.Errorf("expected no chart image, got %v", err)
	}
	if got := readDoc(t, path); got != leaderboard {
		t.Errorf("expected document to be untouched, got:\n%s", got)
	}
}

// TestChartPipelineDryRun tests that a dry run writes neither image nor document.
func TestChartPipelineDryRun(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, leaderboard)
	if err := enrichPipeline(newFakeDirectory(), false).Execute(context.Background(), NewRun("enrich", path)); err != nil {
		t.Fatalf("enrich failed: %v", err)
	}
	before := readDoc(t, path)

	imagePath := filepath.Join(filepath.Dir(path), "country_distribution.png")
	run := NewRun("chart", path)
	if err := chartPipeline(imagePath, true).Execute(context.Background(), run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(imagePath); !os.IsNotExist(err) {
		t.Errorf("expected no chart image on dry run, got %v", err)
	}
	if !run.Summary.Changed || run.Summary.Written {
		t.Errorf("unexpected summary flags %+v", run.Summary)
	}
	if diff := cmp.Diff(before, readDoc(t, path)); diff != "" {
		t.Errorf("document changed on dry run (-want +got):\n%s", diff)
	}
}
