package log

import (
	"io"
	"log/slog"
)

// options configures New.
type options struct {
	verbose bool
	json    bool
}

// Option configures New.
type Option func(*options)

// WithVerbose lowers the level from Warn to Debug.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithJSON switches the output from text to JSON lines.
func WithJSON(json bool) Option {
	return func(o *options) {
		o.json = json
	}
}

// New returns a logger writing to w through a SecureHandler.
func New(w io.Writer, opts ...Option) *slog.Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if o.verbose {
		handlerOpts.Level = slog.LevelDebug
	}

	var h slog.Handler = slog.NewTextHandler(w, handlerOpts)
	if o.json {
		h = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(NewSecureHandler(h))
}
