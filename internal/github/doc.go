// Package github is a small client for the account directory endpoints of
// the GitHub REST API.
//
// Only two lookups are needed: a user account and an organization account.
// Both return the same Account shape. Responses are classified into
// ErrNotFound, ErrRateLimited or a *StatusError so that callers can decide
// whether to fall back, wait, or give up.
//
// Every request passes through a rate limiter that spaces calls by a fixed
// delay, and through a RoundTripper that injects the Accept header, the
// User-Agent and, when a token is configured, a bearer Authorization header.
package github
