package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers match them with errors.Is.
var (
	// ErrNoDocument is returned when the document path is empty.
	ErrNoDocument = errors.New("no document specified: use --file")

	// ErrNoImage is returned when the chart image path is empty.
	ErrNoImage = errors.New("no image path specified: use --image")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidRequestDelay is returned when the request delay is negative.
	// Use 0 for no delay between requests.
	ErrInvalidRequestDelay = errors.New("invalid request delay: must be non-negative")

	// ErrInvalidBackoff is returned when the rate-limit backoff is negative.
	ErrInvalidBackoff = errors.New("invalid rate limit backoff: must be non-negative")

	// ErrNoHeaderFragment is returned when no header fragment is configured,
	// which would make every line look like the table header.
	ErrNoHeaderFragment = errors.New("header fragment must not be empty")

	// ErrNoAnchorColumn is returned when the anchor column name is empty.
	ErrNoAnchorColumn = errors.New("anchor column must not be empty")

	// ErrInvalidThreshold is returned when the Other threshold is outside [0, 100).
	ErrInvalidThreshold = errors.New("invalid threshold: must be at least 0 and below 100")

	// ErrInvalidChartSize is returned when the chart dimensions are not positive.
	ErrInvalidChartSize = errors.New("invalid chart size: width and height must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
