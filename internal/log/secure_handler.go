package log

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// MaskValue replaces credentials in log output.
const MaskValue = "***REDACTED***"

// credentialKeys are attribute keys whose values are always masked.
var credentialKeys = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"api_key":             true,
	"apikey":              true,
	"github_token":        true,
	"gh_token":            true,
	"access_token":        true,
	"refresh_token":       true,
}

// credentialKeywords mask any key containing them. A bare "key" is left out
// so that attributes like "primary_key" stay readable.
var credentialKeywords = []string{"token", "secret", "password", "passwd", "auth", "credential"}

// tokenPatterns match credentials inside free text. Matches are replaced in
// place, so an error message keeps its context around a leaked token.
var tokenPatterns = []*regexp.Regexp{
	// Classic, OAuth, user-to-server, server-to-server and refresh tokens.
	regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{20,}`),
	// Fine-grained personal access tokens.
	regexp.MustCompile(`\bgithub_pat_[A-Za-z0-9_]{20,}`),
	// GitHub App JWTs.
	regexp.MustCompile(`\beyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*`),
	// Bearer and basic authorization header values.
	regexp.MustCompile(`(?i)\b(?:bearer|basic)\s+[A-Za-z0-9_\-.=+/]{8,}`),
}

// SecureHandler masks credentials before records reach the wrapped handler.
//
// Values are masked whole when their key names a credential. Otherwise
// string and error values are scanned and only the token text is replaced.
// Owner logins, URLs and locations pass through untouched.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler wraps handler. A nil handler wraps slog.Default().Handler().
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled implements slog.Handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.NewRecord(r.Time, r.Level, Redact(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(sanitize(a))
		return true
	})
	return h.handler.Handle(ctx, clean)
}

// WithAttrs implements slog.Handler.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clean[i] = sanitize(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(clean)}
}

// WithGroup implements slog.Handler.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

func sanitize(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		group := v.Group()
		clean := make([]slog.Attr, len(group))
		for i, ga := range group {
			clean[i] = sanitize(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clean...)}
	}

	if isCredentialKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	switch v.Kind() {
	case slog.KindString:
		if s, r := v.String(), Redact(v.String()); r != s {
			return slog.String(a.Key, r)
		}
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			if s, r := err.Error(), Redact(err.Error()); r != s {
				return slog.String(a.Key, r)
			}
		}
	}
	return slog.Attr{Key: a.Key, Value: v}
}

func isCredentialKey(key string) bool {
	key = strings.ToLower(key)
	if credentialKeys[key] {
		return true
	}
	for _, kw := range credentialKeywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

// Redact replaces every credential found in s with MaskValue.
func Redact(s string) string {
	for _, p := range tokenPatterns {
		s = p.ReplaceAllString(s, MaskValue)
	}
	return s
}
