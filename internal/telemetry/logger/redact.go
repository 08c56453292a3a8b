// Package logger provides structured logging for AuthMe.
package logger

import (
	"log/slog"
	"strings"
)

// Sensitive key patterns that should be redacted. Player passwords and
// recovery emails must never reach the operator log.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"credential",
	"email",
}

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data
// and redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		if IsSensitiveKey(a.Key) && a.Value.String() != "" {
			return slog.String(a.Key, redactedValue)
		}
	}

	// Handle nested groups recursively
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
