package acl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

func TestRequester_SendsJSONAndDecodesReply(t *testing.T) {
	t.Parallel()

	type echo struct {
		Title string `json:"title"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "completed=true", r.URL.RawQuery)
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	var got echo
	err := NewRequester(newTestClient(t, ts.URL), nil).
		Do(context.Background(), http.MethodPost, "/items?completed=true", http.StatusCreated, echo{Title: "Rasengan"}, &got)

	require.NoError(t, err)
	assert.Equal(t, "Rasengan", got.Title)
}

func TestRequester_NoBodyOmitsContentType(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	err := NewRequester(newTestClient(t, ts.URL), nil).
		Do(context.Background(), http.MethodDelete, "/items/1", http.StatusNoContent, nil, nil)

	assert.NoError(t, err)
}

func TestRequester_MalformedReply(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"title":`))
	}))
	defer ts.Close()

	var out map[string]any
	err := NewRequester(newTestClient(t, ts.URL), nil).
		Do(context.Background(), http.MethodGet, "/items/1", http.StatusOK, nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding GET /items/1 reply")
	assert.False(t, errors.Is(err, domain.ErrUnavailable))
}

func TestRequester_UnreachableIsUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	err := NewRequester(newTestClient(t, url), nil).
		Do(context.Background(), http.MethodGet, "/items", http.StatusOK, nil, nil)

	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestRequester_CallerCancelIsNotUnavailable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRequester(newTestClient(t, ts.URL), nil).
		Do(ctx, http.MethodGet, "/items", http.StatusOK, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, domain.ErrUnavailable))
}
