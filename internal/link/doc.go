// Package link extracts repository owner identities from table rows.
//
// A row is parsed as inline Markdown with goldmark, so that standard links,
// angle-bracket autolinks and bare URLs are all recognized the same way the
// document renderer would see them. Inline HTML anchors are parsed with
// golang.org/x/net/html. The owner is the first path segment of the first
// link that points at a repository on the hosting service.
package link
