package pagination

import (
	"testing"

	"github.com/angelmondragon/storegate/pkg/normalize"
)

func TestParamsOffset(t *testing.T) {
	tests := []struct {
		page, limit, offset int
	}{
		{page: 1, limit: 10, offset: 0},
		{page: 3, limit: 10, offset: 20},
		{page: 5, limit: 7, offset: 28},
		{page: 0, limit: 10, offset: 0},
	}
	for _, tt := range tests {
		p := Params{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.offset {
			t.Fatalf("Offset(page=%d, limit=%d) = %d, want %d", tt.page, tt.limit, got, tt.offset)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	if err := (Params{Page: 1, Limit: 1}).Validate(); err != nil {
		t.Fatalf("minimal valid params rejected: %v", err)
	}
	if err := (Params{Page: 0, Limit: 10}).Validate(); err == nil {
		t.Fatal("expected error for page 0")
	}
	if err := (Params{Page: 1, Limit: 0}).Validate(); err == nil {
		t.Fatal("expected error for limit 0")
	}
}

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(-3); got != DefaultLimit {
		t.Fatalf("expected default limit for negative, got %d", got)
	}
	if got := NormalizeLimit(500); got != MaxLimit {
		t.Fatalf("expected max limit cap, got %d", got)
	}
	if got := NormalizeLimit(20); got != 20 {
		t.Fatalf("expected limit preserved, got %d", got)
	}
}

func TestIsAllowedLimit(t *testing.T) {
	for _, limit := range AllowedLimits {
		if !IsAllowedLimit(limit) {
			t.Fatalf("allowed limit %d rejected", limit)
		}
	}
	if IsAllowedLimit(13) {
		t.Fatal("13 is not an offered page size")
	}
}

func TestBuildPage(t *testing.T) {
	type row struct{ ID string }
	fromObject := func(o normalize.Object) row {
		return row{ID: o.String("id", "_id")}
	}

	t.Run("items envelope with total", func(t *testing.T) {
		body := map[string]any{
			"items": []any{map[string]any{"id": "a"}, map[string]any{"_id": "b"}},
			"total": 12.0,
		}
		page := BuildPage(body, fromObject)
		if len(page.Items) != 2 || page.Items[1].ID != "b" {
			t.Fatalf("unexpected items %v", page.Items)
		}
		if page.Total == nil || *page.Total != 12 {
			t.Fatalf("expected total 12, got %v", page.Total)
		}
	})

	t.Run("bare array has unknown total", func(t *testing.T) {
		page := BuildPage([]any{map[string]any{"id": "a"}}, fromObject)
		if len(page.Items) != 1 {
			t.Fatalf("unexpected items %v", page.Items)
		}
		if page.Total != nil {
			t.Fatalf("bare arrays carry no total, got %v", page.Total)
		}
	})

	t.Run("garbage body is an empty page", func(t *testing.T) {
		page := BuildPage(3.14, fromObject)
		if page.Items == nil || len(page.Items) != 0 {
			t.Fatalf("expected non-nil empty items, got %v", page.Items)
		}
		if page.Total != nil {
			t.Fatalf("expected unknown total, got %v", page.Total)
		}
	})
}
