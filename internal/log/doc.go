// Package log provides slog loggers that keep credentials out of the output.
//
// The SecureHandler wraps any slog.Handler and, before a record reaches it:
//   - masks attributes whose key names a credential (api_key, x-goog-api-key,
//     password, token, ...)
//   - masks values that look like a credential on their own (Gemini "AIza"
//     keys, bearer tokens, JWTs)
//   - redacts credentials embedded in longer strings, such as a key in a
//     request URL or the user:password part of a proxy address
//
// Masking applies in verbose mode too; debug output is often pasted into
// issue reports.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("calling model", "model", "gemini-2.5-flash", "api_key", key)
//	// api_key=***REDACTED***
package log
