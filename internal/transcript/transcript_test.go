package transcript

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/digitgenius/shopassist/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func seedExchanges(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()
	exchanges := []Exchange{
		{Message: "show me Samsung", Reply: "Found 1 product(s)", Source: "products", ProductIDs: []string{"p1"}},
		{Message: "do you ship abroad", Reply: "We ship across India.", Source: "gemini", Transport: "ws"},
		{Message: "random question", Reply: "I can help with products.", Source: "faq"},
	}
	for _, e := range exchanges {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
}

func TestRecordAndQuery(t *testing.T) {
	store := newTestStore(t)
	seedExchanges(t, store)

	got, err := store.Query(context.Background(), QueryFilter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 exchanges, got %d", len(got))
	}

	bySource := map[string]Exchange{}
	for _, e := range got {
		bySource[e.Source] = e
		if e.ID == "" {
			t.Error("expected a generated id")
		}
		if e.Timestamp.IsZero() {
			t.Error("expected a timestamp")
		}
	}

	products := bySource["products"]
	if len(products.ProductIDs) != 1 || products.ProductIDs[0] != "p1" {
		t.Errorf("expected product ids to round-trip, got %v", products.ProductIDs)
	}
	if products.Transport != "http" {
		t.Errorf("expected default transport http, got %q", products.Transport)
	}
	if bySource["gemini"].Transport != "ws" {
		t.Errorf("expected ws transport preserved, got %q", bySource["gemini"].Transport)
	}
}

func TestQuerySourceFilter(t *testing.T) {
	store := newTestStore(t)
	seedExchanges(t, store)

	got, err := store.Query(context.Background(), QueryFilter{Source: "faq"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 1 || got[0].Source != "faq" {
		t.Errorf("expected exactly the faq exchange, got %v", got)
	}
}

func TestQueryLimit(t *testing.T) {
	store := newTestStore(t)
	seedExchanges(t, store)

	got, err := store.Query(context.Background(), QueryFilter{Limit: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 exchanges, got %d", len(got))
	}
}

func TestQueryEmptyStore(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Query(context.Background(), QueryFilter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no exchanges, got %d", len(got))
	}
}

func TestRecordRejectsUnknownSource(t *testing.T) {
	store := newTestStore(t)

	err := store.Record(context.Background(), Exchange{Message: "m", Reply: "r", Source: "telepathy"})
	if err == nil {
		t.Error("expected the source check constraint to reject an unknown value")
	}
}

func TestTranscriptEndpoint(t *testing.T) {
	store := newTestStore(t)
	seedExchanges(t, store)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcript?source=products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []Exchange
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 1 || got[0].Source != "products" {
		t.Errorf("expected the products exchange, got %v", got)
	}
}

func TestTranscriptEndpointEmpty(t *testing.T) {
	store := newTestStore(t)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcript", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}
