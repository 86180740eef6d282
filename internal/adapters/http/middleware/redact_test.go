package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/middleware"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		values []string
		want   string
	}{
		{name: "bearer token", header: "Authorization", values: []string{"Bearer hokage-only"}, want: logging.Redacted},
		{name: "api key", header: "X-Api-Key", values: []string{"k-123"}, want: logging.Redacted},
		{name: "cookie", header: "Cookie", values: []string{"session=abc"}, want: logging.Redacted},
		{name: "websocket subprotocol", header: "Sec-Websocket-Protocol", values: []string{"token.abc"}, want: logging.Redacted},
		{name: "plain header", header: "Content-Type", values: []string{"application/json"}, want: "application/json"},
		{name: "multi value", header: "Accept", values: []string{"application/json", "application/problem+json"}, want: "application/json,application/problem+json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(http.Header{tt.header: tt.values})

			require.Len(t, attrs, 1)
			assert.Equal(t, tt.header, attrs[0].Key)
			assert.Equal(t, tt.want, attrs[0].Value.String())
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Request-Id":  {"req-1"},
		"Authorization": {"Bearer t"},
		"Accept":        {"*/*"},
	})

	require.Len(t, attrs, 3)
	assert.Equal(t, []string{"Accept", "Authorization", "X-Request-Id"},
		[]string{attrs[0].Key, attrs[1].Key, attrs[2].Key})
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RedactHeaders(http.Header{}))
	assert.Empty(t, middleware.RedactHeaders(nil))
}
