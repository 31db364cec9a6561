// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of sensitive values (tokens, authorization headers)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Security Features
//
// The SecureHandler masks credentials in log output:
//   - values under credential keys (Authorization, Cookie, github_token, and
//     any key containing "token", "secret" or "auth") are masked whole
//   - GitHub tokens, App JWTs and bearer headers inside other strings and
//     errors are replaced in place, keeping the surrounding message
//
// Owner logins and locations are never masked, whatever their shape. Even in
// verbose mode a GITHUB_TOKEN never appears in CI logs.
//
// # Usage
//
//	logger := log.New(os.Stderr, log.WithVerbose(true))
//
//	logger.Debug("directory request",
//	    "authorization", "token ghp_...", // masked
//	    "owner", "golang",
//	)
package log
