// Package owner resolves repository owner identities into owner records.
//
// A Resolver asks the directory for a user account first and falls back to
// the organization endpoint when the user does not exist. Results, including
// failures, are memoized in a Cache that lives for one run, so each distinct
// identity reaches the network at most once. The Cache is an explicit value
// handed to the Resolver; there is no package-level state.
package owner
