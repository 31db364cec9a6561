package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ishandutta2007/Tops-of-Github/internal/table"
)

// ErrNoData is returned when the table or its country column cannot be
// located, so there is nothing to chart.
var ErrNoData = errors.New("no distribution data")

// Tally counts the rows of the table identified by fragment per value of
// column. Rows too short to have the column and rows with an empty cell are
// skipped. A table whose column exists but has no countable rows yields an
// empty, non-nil map.
func Tally(doc, fragment, column string) (map[string]int, error) {
	lines, _ := table.SplitLines(doc)
	tbl, err := table.Locate(lines, fragment)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoData, err)
	}
	values, err := tbl.Column(column)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoData, err)
	}

	counts := make(map[string]int)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		counts[v]++
	}
	return counts, nil
}
