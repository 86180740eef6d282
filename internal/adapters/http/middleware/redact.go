package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

// RedactHeaders renders headers as log attributes sorted by name. Credential
// headers (see logging.IsSensitiveHeader) are replaced with logging.Redacted;
// multi-value headers are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := logging.Redacted
		if !logging.IsSensitiveHeader(name) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
