package document

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fragment = "| Ranking | Project Name |"

const heading = "## Repository Owner Country Distribution"

const tableDoc = `# Top

| Ranking | Project Name |
| - | - |
| 1 | a |

*updated*
`

// TestSectionLines tests section rendering.
func TestSectionLines(t *testing.T) {
	t.Parallel()

	want := []string{
		heading,
		"",
		"![Country Distribution](country_distribution.png)",
	}
	if diff := cmp.Diff(want, NewSection("country_distribution.png").Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

// TestSpliceSection tests insertion, replacement and appending.
func TestSpliceSection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		doc   string
		image string
		want  string
	}{
		{
			name:  "inserted after the table",
			doc:   tableDoc,
			image: "country_distribution.png",
			want: `# Top

| Ranking | Project Name |
| - | - |
| 1 | a |

## Repository Owner Country Distribution

![Country Distribution](country_distribution.png)

*updated*
`,
		},
		{
			name:  "table directly followed by text",
			doc:   "| Ranking | Project Name |\n| - | - |\n| 1 | a |\nnext\n",
			image: "c.png",
			want:  "| Ranking | Project Name |\n| - | - |\n| 1 | a |\n\n" + heading + "\n\n![Country Distribution](c.png)\n\nnext\n",
		},
		{
			name:  "existing section replaced in place",
			doc:   "intro\n\n" + heading + "\n\n![Country Distribution](old.png)\n\n| Ranking | Project Name |\n| - | - |\n",
			image: "new.png",
			want:  "intro\n\n" + heading + "\n\n![Country Distribution](new.png)\n\n| Ranking | Project Name |\n| - | - |\n",
		},
		{
			name:  "duplicates collapsed",
			doc:   "A\n\n" + heading + "\n\n![x](a.png)\n\nB\n\n" + heading + "\n\n![x](b.png)\n\nC\n",
			image: "c.png",
			want:  "A\n\n" + heading + "\n\n![Country Distribution](c.png)\n\nB\n\nC\n",
		},
		{
			name:  "appended without table",
			doc:   "# Nothing\n",
			image: "c.png",
			want:  "# Nothing\n\n" + heading + "\n\n![Country Distribution](c.png)\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SpliceSection(tc.doc, NewSection(tc.image), fragment)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestSpliceSectionIdempotent tests that repeated splices keep one section
// pointing at the latest image.
func TestSpliceSectionIdempotent(t *testing.T) {
	t.Parallel()

	once := SpliceSection(tableDoc, NewSection("first.png"), fragment)
	twice := SpliceSection(once, NewSection("first.png"), fragment)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second splice changed the document (-first +second):\n%s", diff)
	}

	moved := SpliceSection(twice, NewSection("second.png"), fragment)
	if n := strings.Count(moved, heading); n != 1 {
		t.Errorf("expected one section, got %d", n)
	}
	if strings.Contains(moved, "first.png") || !strings.Contains(moved, "second.png") {
		t.Errorf("expected the section to reference second.png:\n%s", moved)
	}
}

// TestSpliceSectionCRLF tests line ending preservation.
func TestSpliceSectionCRLF(t *testing.T) {
	t.Parallel()

	doc := strings.ReplaceAll(tableDoc, "\n", "\r\n")
	got := SpliceSection(doc, NewSection("c.png"), fragment)
	if strings.Contains(strings.ReplaceAll(got, "\r\n", ""), "\n") {
		t.Errorf("expected only CRLF line endings:\n%q", got)
	}
}

// TestSpliceSectionMixedLineEndings tests that each original line keeps its
// terminator and new lines use the prevailing one.
func TestSpliceSectionMixedLineEndings(t *testing.T) {
	t.Parallel()

	doc := "# Top\r\n" + strings.TrimPrefix(tableDoc, "# Top\n")
	got := SpliceSection(doc, NewSection("c.png"), fragment)

	want := "# Top\r\n" +
		"\n" +
		"| Ranking | Project Name |\n" +
		"| - | - |\n" +
		"| 1 | a |\n" +
		"\n" +
		heading + "\n" +
		"\n" +
		"![Country Distribution](c.png)\n" +
		"\n" +
		"*updated*\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
	if again := SpliceSection(got, NewSection("c.png"), fragment); again != got {
		t.Errorf("second splice changed the document:\n%q", again)
	}
}
