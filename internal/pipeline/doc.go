// Package pipeline runs the tool's work as a sequence of steps.
//
// Each command builds a Pipeline out of steps that share a *Run: the
// document is read, transformed in memory, and written back by the last
// step, so a failure anywhere before that leaves the file on disk untouched.
// Steps run strictly one after another.
//
// Not-found conditions (no table, no country column) are not failures: the
// step that meets one sets Run.NoData and the steps after it skip their work.
package pipeline
