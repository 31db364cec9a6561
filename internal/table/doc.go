// Package table implements the Markdown table model shared by the enrichment
// and chart pipelines.
//
// A table is located in a document by a header fragment, parsed into a header,
// an optional separator and data rows, and written back over exactly the same
// line range. Columns are always addressed by name through the Schema derived
// from the header, never by a fixed offset, because the table shape depends on
// whether enrichment already ran.
//
// The package is deliberately not a general Markdown parser. It handles the
// pipe-table shape produced by the leaderboard generator, including its own
// rewritten output.
package table
