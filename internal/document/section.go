package document

import (
	"io"
	"strings"

	"github.com/ishandutta2007/Tops-of-Github/internal/table"
	"github.com/nao1215/markdown"
)

const (
	// DefaultSectionHeading is the heading of the chart reference section.
	DefaultSectionHeading = "Repository Owner Country Distribution"

	// DefaultImageAlt is the alt text of the chart image.
	DefaultImageAlt = "Country Distribution"
)

// Section is the chart reference section.
type Section struct {
	// Heading is the level-two heading text that identifies the section.
	Heading string
	// Alt is the image alt text.
	Alt string
	// Image is the image path as written in the document.
	Image string
}

// NewSection returns the default section referencing image.
func NewSection(image string) Section {
	return Section{
		Heading: DefaultSectionHeading,
		Alt:     DefaultImageAlt,
		Image:   image,
	}
}

// headingLine is the exact heading line of the section.
func (s Section) headingLine() string {
	return "## " + s.Heading
}

// Lines renders the section: heading, blank line, image.
func (s Section) Lines() []string {
	md := markdown.NewMarkdown(io.Discard).
		H2(s.Heading).
		PlainText("").
		PlainText(markdown.Image(s.Alt, s.Image))
	return strings.Split(strings.ReplaceAll(md.String(), "\r\n", "\n"), "\n")
}

// SpliceSection returns doc with exactly one copy of the section.
//
// An existing section, found by its heading line anywhere in the document,
// is replaced in place and any further copies are removed. Otherwise the
// section is inserted after the table identified by fragment, or appended
// when the table cannot be located. A section is its heading line plus the
// image line that follows it, with any blank lines in between; text after
// the image is never touched.
func SpliceSection(doc string, s Section, fragment string) string {
	lines, eols := table.SplitLines(doc)
	src := text{lines: lines, eols: eols}

	spans := findSections(lines, s.headingLine())
	if len(spans) > 0 {
		var out text
		prev := 0
		for i, sp := range spans {
			out.copy(src, prev, sp.start)
			if i == 0 {
				out.add(s.Lines()...)
			} else {
				out.trimTrailingBlank()
			}
			prev = sp.end
		}
		out.copy(src, prev, len(lines))
		return out.String()
	}

	if tbl, err := table.Locate(lines, fragment); err == nil {
		return insertAt(src, tbl.End, s.Lines()).String()
	}
	return appendSection(src, s.Lines()).String()
}

// text is a list of lines paired with their terminators.
type text struct {
	lines []string
	eols  table.Endings
}

// copy appends lines [from, to) of src with their terminators.
func (t *text) copy(src text, from, to int) {
	t.lines = append(t.lines, src.lines[from:to]...)
	t.eols = append(t.eols, src.eols[from:to]...)
}

// add appends new lines, which take the prevailing terminator.
func (t *text) add(lines ...string) {
	t.lines = append(t.lines, lines...)
	t.eols = append(t.eols, make(table.Endings, len(lines))...)
}

func (t *text) trimTrailingBlank() {
	n := len(t.lines)
	for n > 0 && strings.TrimSpace(t.lines[n-1]) == "" {
		n--
	}
	t.lines, t.eols = t.lines[:n], t.eols[:n]
}

func (t text) String() string {
	return table.JoinLines(t.lines, t.eols)
}

type span struct {
	start, end int
}

// findSections returns the line spans of every section whose heading line
// equals heading.
func findSections(lines []string, heading string) []span {
	var spans []span
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != heading {
			continue
		}
		end := i + 1
		j := end
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[j]), "![") {
			end = j + 1
		}
		spans = append(spans, span{start: i, end: end})
		i = end - 1
	}
	return spans
}

// insertAt places section at line index at, surrounded by blank lines.
func insertAt(src text, at int, section []string) text {
	var out text
	out.copy(src, 0, at)
	out.add("")
	out.add(section...)
	if at < len(src.lines) && strings.TrimSpace(src.lines[at]) != "" {
		out.add("")
	}
	out.copy(src, at, len(src.lines))
	return out
}

// appendSection adds section at the end, keeping a final newline when the
// document had one.
func appendSection(src text, section []string) text {
	n := len(src.lines)
	trailingNewline := n > 0 && src.lines[n-1] == ""
	var out text
	out.copy(src, 0, n)
	out.trimTrailingBlank()
	if len(out.lines) > 0 {
		out.add("")
	}
	out.add(section...)
	if trailingNewline {
		out.add("")
	}
	return out
}
