// Package chart turns the country column of the leaderboard table into a
// distribution chart.
//
// Tally counts rows per country, Distribution orders the counts and merges
// slices below a share threshold into a single "Other" slice, and the
// renderers draw that distribution as a PNG donut chart or as a Mermaid pie
// chart for Markdown output.
package chart
