// Package enrich adds owner classification and country columns to the
// leaderboard table of a Markdown document.
//
// Enrich is idempotent: running it on its own output with the same owner
// data produces the same document.
package enrich
