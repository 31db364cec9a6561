// Package model defines the data structures shared between packages.
//
// This package contains the following main types:
//   - OwnerKind and Owner: the resolved metadata of a repository owner
//   - Slice: one segment of the country distribution
//   - Summary: the outcome of an enrich or chart run, consumed by report writers
//
// The table itself is not modeled here; it lives in the table package
// because it is parsed fresh from the document on every run.
package model
