// Package document reads and writes the Markdown document and maintains the
// chart reference section inside it.
//
// Documents are always read whole and written whole. WriteAtomic replaces
// the file by renaming a fully written temporary file over it, so a failure
// at any point leaves either the old or the new content on disk.
package document
