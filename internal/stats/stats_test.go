package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/storegate/pkg/normalize"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

func TestNormalizeSalesStat(t *testing.T) {
	t.Run("aggregation id becomes category label", func(t *testing.T) {
		s := NormalizeSalesStat(normalize.Object{
			"_id":           "Tools",
			"total_revenue": float64(120.5),
			"totalQuantity": float64(14),
			"order_count":   float64(6),
		})
		if s.Category != "Tools" {
			t.Fatalf("expected category Tools, got %q", s.Category)
		}
		if s.TotalRevenue != 120.5 || s.TotalQuantity != 14 || s.OrderCount != 6 {
			t.Fatalf("unexpected stat %+v", s)
		}
	})

	t.Run("category key wins over _id", func(t *testing.T) {
		s := NormalizeSalesStat(normalize.Object{"category": "Plants", "_id": "agg"})
		if s.Category != "Plants" {
			t.Fatalf("expected Plants, got %q", s.Category)
		}
	})
}

func TestNormalizeProductStat(t *testing.T) {
	s := NormalizeProductStat(normalize.Object{
		"name":           "Rake",
		"price":          float64(8),
		"stock":          float64(3),
		"category_name":  "Tools",
		"average_rating": float64(4.5),
		"review_count":   float64(12),
	})
	if s.Name != "Rake" || s.CategoryName != "Tools" {
		t.Fatalf("unexpected stat %+v", s)
	}
	if s.AverageRating != 4.5 || s.ReviewCount != 12 {
		t.Fatalf("unexpected aggregates %+v", s)
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	up, err := upstream.New(upstream.Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("building upstream client: %v", err)
	}
	return NewClient(up, nil)
}

func TestSalesAcceptsBareArrayAndDataEnvelope(t *testing.T) {
	bodies := map[string]string{
		"bare array":    `[{"_id":"Tools","total_revenue":10}]`,
		"data envelope": `{"data":[{"_id":"Tools","total_revenue":10}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/admin/stats/sales" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				w.Write([]byte(body))
			}))
			stats, err := c.Sales(context.Background(), "tok")
			if err != nil {
				t.Fatalf("Sales: %v", err)
			}
			if len(stats) != 1 || stats[0].Category != "Tools" || stats[0].TotalRevenue != 10 {
				t.Fatalf("unexpected stats %+v", stats)
			}
		})
	}
}

func TestProductsEmptyOnMalformedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	stats, err := c.Products(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}
