package table

import "strings"

const (
	delimiter     = '|'
	escapedPipe   = `\|`
	defaultFiller = "---"
)

// Row is one table line split into cells.
type Row struct {
	// Line is the zero-based index of the row in the document lines.
	Line int

	// Raw is the line as it appeared in the document.
	Raw string

	// Cells are the trimmed cell values.
	Cells []string
}

// SplitRow splits a pipe-delimited line into trimmed cells.
//
// The empty artifacts produced by a delimiter at either edge of the line are
// dropped, while empty cells in the interior are kept so that blank values
// survive a parse/format round trip. An escaped pipe (\|) is cell content.
func SplitRow(line string) []string {
	s := strings.TrimSpace(line)
	if s == "" {
		return nil
	}

	cells := make([]string, 0, strings.Count(s, "|")+1)
	var cell strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == delimiter {
			cell.WriteString(escapedPipe)
			i++
			continue
		}
		if s[i] == delimiter {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
			continue
		}
		cell.WriteByte(s[i])
	}
	cells = append(cells, strings.TrimSpace(cell.String()))

	if s[0] == delimiter {
		cells = cells[1:]
	}
	if len(s) > 1 && s[len(s)-1] == delimiter && !strings.HasSuffix(s, escapedPipe) && len(cells) > 0 {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// FormatRow renders cells in the canonical "| a | b |" form.
func FormatRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// isRowLine reports whether the line belongs to a pipe table.
func isRowLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "|")
}

// isHeading reports whether the line is an ATX heading.
func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

// isSeparator reports whether the line is a header separator made only of
// dashes, colons, pipes and spaces.
func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "|") || !strings.Contains(s, "-") {
		return false
	}
	for _, r := range s {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// fit pads cells with filler up to width, or folds any overflow into the last
// cell so the row keeps its content. The boolean reports whether the row had
// to be repaired.
func fit(cells []string, width int, filler string) ([]string, bool) {
	switch {
	case width <= 0 || len(cells) == width:
		return append([]string(nil), cells...), false
	case len(cells) < width:
		out := make([]string, width)
		copy(out, cells)
		for i := len(cells); i < width; i++ {
			out[i] = filler
		}
		return out, true
	default:
		out := make([]string, width)
		copy(out, cells[:width-1])
		out[width-1] = strings.Join(cells[width-1:], " "+escapedPipe+" ")
		return out, true
	}
}

// insertAt returns cells with v inserted at index i.
func insertAt(cells []string, i int, v string) []string {
	if i < 0 {
		i = 0
	}
	if i > len(cells) {
		i = len(cells)
	}
	out := make([]string, 0, len(cells)+1)
	out = append(out, cells[:i]...)
	out = append(out, v)
	return append(out, cells[i:]...)
}
