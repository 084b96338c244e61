package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// sensitiveKeys contains attribute keys whose values are always masked.
var sensitiveKeys = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"x-goog-api-key":      true,
	"api_key":             true,
	"apikey":              true,
	"api-key":             true,
	"gemini_api_key":      true,
	"access_token":        true,
	"refresh_token":       true,
	"cookie":              true,
	"set-cookie":          true,
	"password":            true,
	"secret":              true,
	"token":               true,
	"credentials":         true,
}

// sensitiveKeywords mark a key as sensitive when contained in it.
// The bare word "key" is not listed: "cache_key" and "key_digest" are
// routine attributes in this program.
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "auth", "credential", "apikey", "api_key",
}

// sensitivePatterns match values that are a credential in their entirety.
var sensitivePatterns = []*regexp.Regexp{
	// Google API keys
	regexp.MustCompile(`^AIza[0-9A-Za-z_-]{35}$`),
	// JWT
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	// Bearer and basic auth headers
	regexp.MustCompile(`(?i)^bearer\s+.+`),
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),
}

// embeddedPatterns match credentials inside longer strings. Only the
// matched part is replaced.
var embeddedPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{re: regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`), repl: MaskValue},
	{re: regexp.MustCompile(`([?&](?:key|api_key)=)[^&\s]+`), repl: "${1}" + MaskValue},
	{re: regexp.MustCompile(`(://[^:/@\s]+:)[^@\s]+@`), repl: "${1}" + MaskValue + "@"},
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// SecureHandler wraps an slog.Handler and sanitizes every attribute before
// passing the record on.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler creates a new SecureHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled reports whether the underlying handler handles records at level.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's message and attributes, then forwards it.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, RedactString(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the given attributes sanitized and added.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitizedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitizedAttrs[i] = sanitizeAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(sanitizedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

func sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		sanitizedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitizedAttrs[i] = sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitizedAttrs...)}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, RedactString(a.Value.String()))
	case slog.KindAny:
		// errors and Stringers are flattened so their text can be checked
		if err, ok := a.Value.Any().(error); ok && err != nil {
			return slog.String(a.Key, RedactString(err.Error()))
		}
	}
	return a
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	if sensitiveKeys[key] {
		return true
	}
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// IsSensitiveValue reports whether value as a whole looks like a credential.
func IsSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// RedactString masks value entirely when it is a credential, otherwise it
// replaces any credentials embedded in it.
func RedactString(value string) string {
	if IsSensitiveValue(value) {
		return MaskValue
	}
	for _, p := range embeddedPatterns {
		value = p.re.ReplaceAllString(value, p.repl)
	}
	return value
}

// NewSecureLogger creates a text logger that writes sanitized records to w.
// verbose selects the debug level; otherwise only warnings and errors are
// written.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSecureHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewSecureJSONLogger is NewSecureLogger with JSON output. The serve command
// uses it so request logs can be shipped as-is.
func NewSecureJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSecureHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
