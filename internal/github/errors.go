package github

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the directory has no account with the
	// requested login at the queried endpoint.
	ErrNotFound = errors.New("account not found")

	// ErrRateLimited is returned when the directory refuses the request
	// because the caller exhausted its request quota.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrEmptyLogin is returned when a lookup is attempted without a login.
	ErrEmptyLogin = errors.New("login must not be empty")

	// ErrInvalidBaseURL is returned when the API base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid API base URL")
)

// StatusError describes a response that is neither success, not-found nor
// rate limiting.
type StatusError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// URL is the requested URL.
	URL string
	// Body is the beginning of the response body, for diagnostics.
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}
