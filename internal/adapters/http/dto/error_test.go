package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation sentinel", domain.ErrValidation, http.StatusBadRequest},
		{"validation fields", &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}, http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"downstream unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"wrapped", fmt.Errorf("toggling task 7: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unmapped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dto.StatusFor(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/42?kind=daily", nil)

	got := dto.NewErrorResponse(r, fmt.Errorf("task 42: %w", domain.ErrNotFound))

	assert.Equal(t, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   "task 42: not found",
		Instance: "/api/v1/tasks/42?kind=daily",
	}, got)
}

func TestNewErrorResponse_HidesUnmappedDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/views", nil)

	got := dto.NewErrorResponse(r, errors.New("dial tcp 10.0.0.7:6379: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "unexpected error", got.Detail)
	assert.NotContains(t, got.Detail, "6379")
}

func TestNewErrorResponse_FieldErrorsSorted(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)
	verr := &domain.ValidationError{Fields: map[string]string{
		"xp":          "must not be negative, got -1",
		"title":       domain.MsgRequired,
		"description": domain.MsgRequired,
	}}

	got := dto.NewErrorResponse(r, verr)

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.description", Message: domain.MsgRequired},
		{Location: "body.title", Message: domain.MsgRequired},
		{Location: "body.xp", Message: "must not be negative, got -1"},
	}, got.Errors)
}

func TestNewErrorResponse_NoFieldErrorsForOtherFailures(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/1", nil)

	assert.Nil(t, dto.NewErrorResponse(r, domain.ErrConflict).Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantChallenge bool
	}{
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict", err: domain.ErrConflict, wantStatus: http.StatusConflict},
		{name: "unavailable", err: domain.ErrUnavailable, wantStatus: http.StatusBadGateway},
		{name: "unauthorized", err: fmt.Errorf("creating task: %w", domain.ErrUnauthorized), wantStatus: http.StatusUnauthorized, wantChallenge: true},
		{name: "forbidden has no challenge", err: domain.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", nil)

			dto.WriteErrorResponse(w, r, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
			if tt.wantChallenge {
				assert.Equal(t, `Bearer realm="konoha"`, w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, w.Header().Get("WWW-Authenticate"))
			}

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, "/api/v1/tasks", body.Instance)
		})
	}
}

func TestWriteErrorResponse_ValidationBody(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/budget", nil)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"amount": "must not be zero"}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"type": "about:blank",
		"title": "Bad Request",
		"status": 400,
		"detail": "validation error: amount: must not be zero",
		"instance": "/api/v1/budget",
		"errors": [{"location": "body.amount", "message": "must not be zero"}]
	}`, w.Body.String())
}
