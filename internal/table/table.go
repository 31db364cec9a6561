package table

import (
	"fmt"
	"strings"
)

// Schema is the ordered list of column names taken from the header row.
type Schema []string

// Index returns the position of the column with the exact given name, or -1.
func (s Schema) Index(name string) int {
	for i, col := range s {
		if col == name {
			return i
		}
	}
	return -1
}

// Has reports whether the schema contains the named column.
func (s Schema) Has(name string) bool {
	return s.Index(name) >= 0
}

// Table is a located pipe table.
//
// Start and End delimit the table in the document lines: Start is the header
// line and End is the exclusive end boundary (the first line after the last
// data row).
type Table struct {
	Header    Row
	Separator *Row
	Rows      []Row
	Start     int
	End       int
}

// Locate finds the table whose header line contains fragment.
//
// The first line containing the fragment is the header. The following line is
// the separator when it consists only of dash/colon filler. Data rows are the
// subsequent lines starting with the delimiter; the first line that does not,
// or that is a heading, ends the table. ErrTableNotFound is returned when the
// fragment does not occur.
func Locate(lines []string, fragment string) (*Table, error) {
	header := -1
	if fragment != "" {
		for i, line := range lines {
			if strings.Contains(line, fragment) {
				header = i
				break
			}
		}
	}
	if header < 0 {
		return nil, fmt.Errorf("%w: no line contains %q", ErrTableNotFound, fragment)
	}

	t := &Table{
		Header: Row{Line: header, Raw: lines[header], Cells: SplitRow(lines[header])},
		Start:  header,
	}

	next := header + 1
	if next < len(lines) && isSeparator(lines[next]) {
		t.Separator = &Row{Line: next, Raw: lines[next], Cells: SplitRow(lines[next])}
		next++
	}

	for next < len(lines) {
		line := lines[next]
		if !isRowLine(line) || isHeading(line) {
			break
		}
		t.Rows = append(t.Rows, Row{Line: next, Raw: line, Cells: SplitRow(line)})
		next++
	}
	t.End = next

	return t, nil
}

// Schema returns the column names of the header row.
func (t *Table) Schema() Schema {
	return Schema(t.Header.Cells)
}

// Width returns the number of columns in the header.
func (t *Table) Width() int {
	return len(t.Header.Cells)
}

// Column returns the values of the named column for every data row that is
// long enough to have one. ErrColumnNotFound is returned when the header has
// no such column.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.Schema().Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row.Cells) {
			values = append(values, row.Cells[idx])
		}
	}
	return values, nil
}

// Lines renders the table in canonical form: header, separator and data rows.
func (t *Table) Lines() []string {
	out := make([]string, 0, t.End-t.Start)
	out = append(out, FormatRow(t.Header.Cells))
	if t.Separator != nil {
		out = append(out, FormatRow(t.Separator.Cells))
	}
	for _, row := range t.Rows {
		out = append(out, FormatRow(row.Cells))
	}
	return out
}

// Splice returns a copy of lines with the table's line range replaced by its
// rendered lines. The number of lines is unchanged.
func Splice(lines []string, t *Table) []string {
	out := make([]string, 0, len(lines))
	out = append(out, lines[:t.Start]...)
	out = append(out, t.Lines()...)
	return append(out, lines[t.End:]...)
}

// Endings holds the terminator of each line returned by SplitLines. An
// empty or missing entry stands for the document's prevailing terminator.
type Endings []string

// Default returns the prevailing terminator: CRLF when most terminated lines
// use it, LF otherwise.
func (e Endings) Default() string {
	var crlf, lf int
	for _, eol := range e {
		switch eol {
		case "\r\n":
			crlf++
		case "\n":
			lf++
		}
	}
	if crlf > lf {
		return "\r\n"
	}
	return "\n"
}

// SplitLines splits a document into lines without their terminators and
// records each line's terminator, so that JoinLines can reproduce the
// document byte for byte even when LF and CRLF are mixed. The last line
// never has a terminator.
func SplitLines(doc string) ([]string, Endings) {
	lines := strings.Split(doc, "\n")
	eols := make(Endings, len(lines))
	for i := range len(lines) - 1 {
		if trimmed, ok := strings.CutSuffix(lines[i], "\r"); ok {
			lines[i] = trimmed
			eols[i] = "\r\n"
		} else {
			eols[i] = "\n"
		}
	}
	return lines, eols
}

// JoinLines is the inverse of SplitLines. Lines without a recorded
// terminator get eols.Default().
func JoinLines(lines []string, eols Endings) string {
	def := eols.Default()
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i == len(lines)-1 {
			break
		}
		if i < len(eols) && eols[i] != "" {
			b.WriteString(eols[i])
		} else {
			b.WriteString(def)
		}
	}
	return b.String()
}
