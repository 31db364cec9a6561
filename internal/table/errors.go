package table

import "errors"

var (
	// ErrTableNotFound is returned by Locate when no line contains the header fragment.
	ErrTableNotFound = errors.New("table not found")

	// ErrColumnNotFound is returned when a column required by an operation is
	// absent from the header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNoColumns is returned by Upsert when no columns are requested.
	ErrNoColumns = errors.New("no columns to upsert")
)
