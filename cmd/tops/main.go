// Package main provides the entry point for the tops CLI.
//
// tops maintains the leaderboard tables of a Markdown README: it adds the
// "Owner Type" and "Country" columns from GitHub account data and draws
// the country distribution of repository owners.
//
// Usage:
//
//	tops enrich -f README.md
//	tops chart -f README.md -i country_distribution.png
//	tops update
//
// See --help for all available options.
package main

// main is the entry point for tops.
func main() {
	Execute()
}
