package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

const testUser = "naruto"

var (
	testTime     = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testIdentity = &domain.Identity{UserID: testUser}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// authed attaches the test identity as the Authenticate middleware would.
func authed(r *http.Request) *http.Request {
	return r.WithContext(domain.WithIdentity(r.Context(), testIdentity))
}

func validTask() task.Task {
	return task.Task{
		ID:          1,
		Title:       "Master the Rasengan",
		Description: "Water balloon, rubber ball, regular balloon",
		XP:          20,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func testBoard(tasks ...task.Task) *ports.Board {
	return &ports.Board{
		Tasks:    tasks,
		Progress: progression.Compute(tasks),
		Stats:    task.CountStats(tasks),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func boolPtr(b bool) *bool { return &b }
