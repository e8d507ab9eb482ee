package middleware

import (
	htmlsafe "github.com/reoring/htmlsafe"
)

// Config controls the HTTP boundary behavior shared by the framework
// adapters.
type Config struct {
	// MaxBodyBytes rejects request bodies above this size with 413.
	// Zero means no limit.
	MaxBodyBytes int64
	// EscapeJSONStrings makes SafeJSON escape every string value in the
	// response payload.
	EscapeJSONStrings bool
}

// DefaultConfig returns a recommended default for HTTP boundaries.
func DefaultConfig() Config {
	return Config{
		MaxBodyBytes:      htmlsafe.DefaultMaxInputBytes,
		EscapeJSONStrings: true,
	}
}

// Guard builds the htmlsafe boundary guard for the configured body cap.
func (c Config) Guard() htmlsafe.Guard {
	return htmlsafe.Guard{MaxInputBytes: c.MaxBodyBytes}
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []htmlsafe.Issue) map[string]any {
	return map[string]any{"issues": issues}
}
