package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/storegate/internal/accounts"
	"github.com/angelmondragon/storegate/internal/catalog"
	"github.com/angelmondragon/storegate/internal/dashboard"
	"github.com/angelmondragon/storegate/internal/orders"
	"github.com/angelmondragon/storegate/internal/stats"
	"github.com/angelmondragon/storegate/internal/users"
	"github.com/angelmondragon/storegate/internal/wishlist"
	"github.com/angelmondragon/storegate/pkg/cache"
	"github.com/angelmondragon/storegate/pkg/config"
	"github.com/angelmondragon/storegate/pkg/metrics"
	"github.com/angelmondragon/storegate/pkg/session"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

const testSecret = "router-test-secret"

func mintToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := session.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newTestRouter(t *testing.T, backend http.Handler) http.Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	up, err := upstream.New(upstream.Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("building upstream client: %v", err)
	}

	cfg := &config.Config{
		App:  config.AppConfig{Env: config.AppEnvDev, Port: "0"},
		JWT:  config.JWTConfig{Secret: testSecret},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	catalogClient := catalog.NewClient(up, nil)
	statsClient := stats.NewClient(up, nil)
	registry := prometheus.NewRegistry()

	return NewRouter(
		cfg,
		nil,
		nil,
		cache.NewPageCache(nil, 0, nil),
		metrics.NewGatewayMetrics(registry),
		registry,
		Services{
			Accounts:  accounts.NewClient(up, nil),
			Catalog:   catalogClient,
			Orders:    orders.NewClient(up, nil),
			Users:     users.NewClient(up, nil),
			Wishlist:  wishlist.NewClient(up, nil),
			Stats:     statsClient,
			Dashboard: dashboard.NewService(catalogClient, statsClient, nil),
		},
	)
}

func TestRouterRejectsUnauthenticated(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be reached")
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouterProductListRoundTrip(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected backend path %q", r.URL.Path)
		}
		if r.URL.Query().Get("offset") != "10" {
			t.Errorf("expected offset 10, got %q", r.URL.Query().Get("offset"))
		}
		w.Write([]byte(`{"items":[{"_id":"p1","name":"Rake"}],"total":11}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/?page=2&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "u1", "user"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Items []catalog.Product `json:"items"`
		Total *int              `json:"total"`
		Page  int               `json:"page"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(payload.Items) != 1 || payload.Items[0].ID != "p1" {
		t.Fatalf("unexpected items %+v", payload.Items)
	}
	if payload.Total == nil || *payload.Total != 11 || payload.Page != 2 {
		t.Fatalf("unexpected page metadata %+v", payload)
	}
}

func TestRouterAdminGate(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[],"total":0}`))
	}))

	t.Run("plain user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "u1", "user"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "u9", "admin"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestRouterUpstreamStatusPassthrough(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such product", http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "u1", "user"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected upstream 404 passed through, got %d", rec.Code)
	}
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from liveness, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics, got %d", rec.Code)
	}
}
