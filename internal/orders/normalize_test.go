package orders

import (
	"testing"

	"github.com/angelmondragon/storegate/pkg/normalize"
)

func TestNormalizeOrderItemDerivation(t *testing.T) {
	t.Run("price derived from line total", func(t *testing.T) {
		item := NormalizeOrderItem(normalize.Object{
			"productId": "p1",
			"quantity":  float64(4),
			"lineTotal": float64(40),
		})
		if item.Price != 10 {
			t.Fatalf("expected derived price 10, got %v", item.Price)
		}
		if item.LineTotal != 40 {
			t.Fatalf("expected line total 40, got %v", item.LineTotal)
		}
	})

	t.Run("line total derived from price", func(t *testing.T) {
		item := NormalizeOrderItem(normalize.Object{
			"productId": "p1",
			"quantity":  float64(4),
			"price":     float64(10),
		})
		if item.LineTotal != 40 {
			t.Fatalf("expected derived line total 40, got %v", item.LineTotal)
		}
		if item.Price != 10 {
			t.Fatalf("expected price 10, got %v", item.Price)
		}
	})

	t.Run("both present stays untouched even when inconsistent", func(t *testing.T) {
		item := NormalizeOrderItem(normalize.Object{
			"quantity":  float64(4),
			"price":     float64(10),
			"lineTotal": float64(99),
		})
		if item.Price != 10 || item.LineTotal != 99 {
			t.Fatalf("expected 10/99 preserved, got %v/%v", item.Price, item.LineTotal)
		}
	})

	t.Run("zero quantity with only line total yields zero price", func(t *testing.T) {
		item := NormalizeOrderItem(normalize.Object{
			"quantity":  float64(0),
			"lineTotal": float64(40),
		})
		if item.Price != 0 {
			t.Fatalf("expected price 0 for zero quantity, got %v", item.Price)
		}
		if item.LineTotal != 40 {
			t.Fatalf("expected line total kept, got %v", item.LineTotal)
		}
	})

	t.Run("derived division rounds to cents", func(t *testing.T) {
		item := NormalizeOrderItem(normalize.Object{
			"quantity":  float64(3),
			"lineTotal": float64(10),
		})
		if item.Price != 3.33 {
			t.Fatalf("expected 3.33, got %v", item.Price)
		}
	})

	t.Run("neither present yields zeros", func(t *testing.T) {
		item := NormalizeOrderItem(normalize.Object{"quantity": float64(2)})
		if item.Price != 0 || item.LineTotal != 0 {
			t.Fatalf("expected zeros, got %v/%v", item.Price, item.LineTotal)
		}
	})
}

func TestNormalizeOrderTotals(t *testing.T) {
	cases := []struct {
		name string
		raw  normalize.Object
		want float64
	}{
		{"total wins", normalize.Object{"total": float64(50), "totalPrice": float64(60)}, 50},
		{"totalPrice fallback", normalize.Object{"totalPrice": float64(60)}, 60},
		{"total_price fallback", normalize.Object{"total_price": float64(70)}, 70},
		{"missing defaults to zero", normalize.Object{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeOrder(tc.raw).Total; got != tc.want {
				t.Fatalf("expected total %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNormalizeOrderEmbeds(t *testing.T) {
	t.Run("absent user is nil", func(t *testing.T) {
		o := NormalizeOrder(normalize.Object{"id": "o1"})
		if o.User != nil {
			t.Fatalf("expected nil user, got %+v", o.User)
		}
	})

	t.Run("embedded user and product summaries", func(t *testing.T) {
		o := NormalizeOrder(normalize.Object{
			"_id":     "o1",
			"user_id": "u1",
			"user":    map[string]any{"_id": "u1", "name": "Ana", "email": "ana@example.com"},
			"items": []any{
				map[string]any{
					"product_id": "p1",
					"product":    map[string]any{"_id": "p1", "name": "Rake", "price": float64(8)},
					"quantity":   float64(2),
					"price":      float64(8),
				},
			},
		})
		if o.ID != "o1" || o.UserID != "u1" {
			t.Fatalf("unexpected order %+v", o)
		}
		if o.User == nil || o.User.Email != "ana@example.com" {
			t.Fatalf("unexpected user %+v", o.User)
		}
		if len(o.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(o.Items))
		}
		item := o.Items[0]
		if item.ProductID != "p1" || item.Product == nil || item.Product.Name != "Rake" {
			t.Fatalf("unexpected item %+v", item)
		}
		if item.LineTotal != 16 {
			t.Fatalf("expected derived line total 16, got %v", item.LineTotal)
		}
	})

	t.Run("non-array items become empty slice", func(t *testing.T) {
		o := NormalizeOrder(normalize.Object{"id": "o1", "items": "corrupt"})
		if o.Items == nil || len(o.Items) != 0 {
			t.Fatalf("expected empty items, got %v", o.Items)
		}
	})
}
