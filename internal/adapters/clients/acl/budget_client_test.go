package acl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/budget"
)

func entryJSON(id int64, title, amount, kind string) map[string]any {
	return map[string]any{
		"id": id, "title": title, "amount": amount, "type": kind,
		"created_at": "2026-01-01T00:00:00Z",
		"updated_at": "2026-01-01T00:00:00Z",
	}
}

func TestBudgetClient_ListEntries(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/users/naruto/budget/entries" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"entries": []map[string]any{
				entryJSON(1, "Mission pay", "500.00", "income"),
				entryJSON(2, "Ichiraku", "12.40", "expense"),
			},
			"count": 2,
		})
	}))
	defer ts.Close()

	client := NewBudgetClient(newTestClient(t, ts.URL), nil)
	entries, err := client.ListEntries(context.Background(), testOwner)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if got := budget.Summarize(entries).Balance; !got.Equal(decimal.RequireFromString("487.6")) {
		t.Errorf("balance = %s, want 487.6", got)
	}
}

func TestBudgetClient_ListEntries_MalformedAmount(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"entries": []map[string]any{entryJSON(1, "Mission pay", "lots", "income")},
		})
	}))
	defer ts.Close()

	client := NewBudgetClient(newTestClient(t, ts.URL), nil)
	if _, err := client.ListEntries(context.Background(), testOwner); err == nil {
		t.Fatal("ListEntries() error = nil, want translation error")
	}
}

func TestBudgetClient_CreateEntry(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/users/naruto/budget/entries" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, entryJSON(3, "Kunai", "-30", "expense"))
	}))
	defer ts.Close()

	client := NewBudgetClient(newTestClient(t, ts.URL), nil)
	got, err := client.CreateEntry(context.Background(), testOwner, &budget.Entry{
		Title:  "Kunai",
		Amount: decimal.NewFromInt(30),
		Kind:   budget.KindExpense,
	})
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}
	if got.ID != 3 || !got.Amount.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("CreateEntry() = %+v", got)
	}
	if gotBody["amount"] != "-30" || gotBody["type"] != "expense" {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestBudgetClient_UpdateEntry(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/users/naruto/budget/entries/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, entryJSON(3, "Kunai set", "-45", "expense"))
	}))
	defer ts.Close()

	client := NewBudgetClient(newTestClient(t, ts.URL), nil)
	got, err := client.UpdateEntry(context.Background(), testOwner, 3, &budget.Entry{
		ID: 3, Title: "Kunai set", Amount: decimal.NewFromInt(-45), Kind: budget.KindExpense,
	})
	if err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}
	if got.Title != "Kunai set" {
		t.Errorf("Title = %q, want %q", got.Title, "Kunai set")
	}
}

func TestBudgetClient_GetEntry_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewBudgetClient(newTestClient(t, ts.URL), nil)
	_, err := client.GetEntry(context.Background(), testOwner, 8)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetEntry() error = %v, want ErrNotFound", err)
	}
}

func TestBudgetClient_DeleteEntry(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/users/naruto/budget/entries/4" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := NewBudgetClient(newTestClient(t, ts.URL), nil)
	if err := client.DeleteEntry(context.Background(), testOwner, 4); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
}
