package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestClientGetDecodesAndForwardsToken(t *testing.T) {
	var gotAuth, gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"p1"}],"total":1}`))
	}))
	defer backend.Close()

	client, err := New(Options{BaseURL: backend.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	query := url.Values{}
	query.Set("offset", "20")
	query.Set("limit", "10")

	body, err := client.Get(context.Background(), "/products", query, "tok-123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer forwarding, got %q", gotAuth)
	}
	if gotQuery != "limit=10&offset=20" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	obj, ok := body.(map[string]any)
	if !ok {
		t.Fatalf("expected decoded object, got %T", body)
	}
	if _, ok := obj["items"]; !ok {
		t.Fatalf("expected items key, got %v", obj)
	}
}

func TestClientSurfacesStatusErrorVerbatim(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"maintenance"}`))
	}))
	defer backend.Close()

	client, err := New(Options{BaseURL: backend.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Get(context.Background(), "/orders", nil, "")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", statusErr.StatusCode)
	}
	if statusErr.Path != "/orders" {
		t.Fatalf("expected request path kept, got %q", statusErr.Path)
	}
	if statusErr.BodySnippet == "" {
		t.Fatal("expected body snippet")
	}
}

func TestClientPostSendsJSON(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"new"}}`))
	}))
	defer backend.Close()

	client, err := New(Options{BaseURL: backend.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	body, err := client.Post(context.Background(), "/admin/products", map[string]any{"name": "x"}, "tok")
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if body == nil {
		t.Fatal("expected decoded creation body")
	}
}

func TestClientEmptyBodyDecodesToNil(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	client, err := New(Options{BaseURL: backend.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	body, err := client.Delete(context.Background(), "/wishlist/w1", "tok")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if body != nil {
		t.Fatalf("expected nil body, got %v", body)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error for missing base url")
	}
}
