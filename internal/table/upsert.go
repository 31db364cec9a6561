package table

import "fmt"

// UpsertSpec describes columns to add to, or refresh in, a table.
type UpsertSpec struct {
	// Anchor is the existing column after which the columns are inserted when
	// none of them is present yet.
	Anchor string

	// Columns are the column names in the order they should appear.
	Columns []string

	// Filler is the separator cell written for inserted columns.
	// Defaults to "---".
	Filler string
}

// ValueFunc returns the values for the upserted columns of a data row, in
// UpsertSpec.Columns order. A nil result blanks the row's cells.
type ValueFunc func(row Row) []string

// Result reports what Upsert did.
type Result struct {
	// Inserted lists the columns that were added by this call.
	Inserted []string

	// Positions holds the final index of each upserted column.
	Positions []int

	// Repaired is the number of rows that were padded or folded to the
	// pre-insert width.
	Repaired int
}

// Upsert inserts or updates the requested columns in place.
//
// When every column is already present the call only overwrites those cells,
// so the column count never changes and applying Upsert to its own output is
// a fixed point. When none is present they are inserted right after the
// anchor column. When only some are present, each missing column is placed
// next to its present neighbour in column order. Every data row takes part so
// that all rows end up with the header's cell count: short rows are padded,
// long rows have the overflow folded into their last cell, and rows for which
// values returns nil get empty cells.
//
// ErrColumnNotFound is returned, and the table left untouched, when insertion
// is needed but the anchor column is absent.
func (t *Table) Upsert(spec UpsertSpec, values ValueFunc) (Result, error) {
	if len(spec.Columns) == 0 {
		return Result{}, ErrNoColumns
	}
	filler := spec.Filler
	if filler == "" {
		filler = defaultFiller
	}

	width := t.Width()
	names, inserts, err := planColumns(t.Schema(), spec)
	if err != nil {
		return Result{}, err
	}

	positions := make([]int, len(spec.Columns))
	for i, col := range spec.Columns {
		positions[i] = names.Index(col)
	}

	var result Result
	for _, p := range inserts {
		result.Inserted = append(result.Inserted, p.column)
	}
	result.Positions = positions

	if t.Separator != nil {
		cells, _ := fit(t.Separator.Cells, width, filler)
		for _, p := range inserts {
			cells = insertAt(cells, p.at, filler)
		}
		t.Separator.Cells = cells
	}

	for i := range t.Rows {
		row := &t.Rows[i]
		cells, repaired := fit(row.Cells, width, "")
		if repaired {
			result.Repaired++
		}
		for _, p := range inserts {
			cells = insertAt(cells, p.at, "")
		}

		var vals []string
		if values != nil {
			vals = values(*row)
		}
		for k, pos := range positions {
			v := ""
			if k < len(vals) {
				v = vals[k]
			}
			cells[pos] = v
		}
		row.Cells = cells
	}

	t.Header.Cells = names
	return result, nil
}

// insertion is one column insertion, applied in order to every row.
type insertion struct {
	at     int
	column string
}

// planColumns computes the post-upsert schema and the ordered insertions
// that turn the current schema into it.
func planColumns(schema Schema, spec UpsertSpec) (Schema, []insertion, error) {
	names := append(Schema(nil), schema...)

	present := 0
	for _, col := range spec.Columns {
		if names.Has(col) {
			present++
		}
	}

	var inserts []insertion
	if present == 0 {
		anchor := names.Index(spec.Anchor)
		if anchor < 0 {
			return nil, nil, fmt.Errorf("%w: anchor %q", ErrColumnNotFound, spec.Anchor)
		}
		for i, col := range spec.Columns {
			at := anchor + 1 + i
			names = insertAt(names, at, col)
			inserts = append(inserts, insertion{at: at, column: col})
		}
		return names, inserts, nil
	}

	for i, col := range spec.Columns {
		if names.Has(col) {
			continue
		}
		at := -1
		for j := i - 1; j >= 0 && at < 0; j-- {
			if k := names.Index(spec.Columns[j]); k >= 0 {
				at = k + 1
			}
		}
		for j := i + 1; j < len(spec.Columns) && at < 0; j++ {
			if k := names.Index(spec.Columns[j]); k >= 0 {
				at = k
			}
		}
		names = insertAt(names, at, col)
		inserts = append(inserts, insertion{at: at, column: col})
	}
	return names, inserts, nil
}
