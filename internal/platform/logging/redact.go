package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted replaces every masked value.
const Redacted = "[REDACTED]"

// sensitiveHeaders lists request headers (lowercase) that carry credentials.
// The HTTP layer consults it through IsSensitiveHeader before logging
// headers, and the logger masks attributes with the same names.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"x-api-key",
	"sec-websocket-protocol",
}

// sensitiveFields are attribute names masked wherever they appear.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"access_token",
}

var (
	// bearerValue catches "Bearer <token>" logged under an innocent key.
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtValue catches bare dashboard tokens. Each segment needs at least ten
	// characters so version strings and hostnames pass through.
	jwtValue = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// tokenQuery catches the websocket fallback credential in raw URLs.
	tokenQuery = regexp.MustCompile(`(?i)access_token=[^&\s]+`)
)

// IsSensitiveHeader reports whether the named header must not be logged.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// redactor builds the masq ReplaceAttr hook installed on every handler.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveFields)+4)
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(tokenQuery),
	)
	return masq.New(opts...)
}
