package host

import (
	"regexp"
	"strings"
)

// RedactedPlaceholder replaces secrets in log output
const RedactedPlaceholder = "[REDACTED]"

var sensitivePatterns = []*regexp.Regexp{
	// OpenAI keys, including project keys (sk-proj-...)
	regexp.MustCompile(`sk-[a-zA-Z0-9_-]{20,}`),
	regexp.MustCompile(`Bearer\s+[a-zA-Z0-9._-]{8,}`),
}

// Redact replaces anything that looks like an API key or bearer token
func Redact(s string) string {
	result := s
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedPlaceholder)
	}
	return result
}

func redactLiteral(s, secret string) string {
	return strings.ReplaceAll(s, secret, RedactedPlaceholder)
}
