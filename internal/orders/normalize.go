package orders

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storegate/pkg/normalize"
)

// NormalizeOrder converts one raw order record into the canonical shape.
func NormalizeOrder(o normalize.Object) Order {
	return Order{
		ID:        o.String("id", "_id"),
		UserID:    o.String("userId", "user_id"),
		User:      normalizeUserSummary(o),
		Items:     normalizeItems(o),
		Total:     o.Float("total", "totalPrice", "total_price"),
		Status:    o.String("status"),
		CreatedAt: o.String("createdAt", "created_at"),
		UpdatedAt: o.String("updatedAt", "updated_at"),
	}
}

func normalizeUserSummary(o normalize.Object) *UserSummary {
	nested, ok := o.Object("user")
	if !ok {
		return nil
	}
	return &UserSummary{
		ID:    nested.String("id", "_id"),
		Name:  nested.String("name"),
		Email: nested.String("email"),
	}
}

func normalizeItems(o normalize.Object) []OrderItem {
	raw := o.Objects("items")
	items := make([]OrderItem, 0, len(raw))
	for _, record := range raw {
		items = append(items, NormalizeOrderItem(record))
	}
	return items
}

// NormalizeOrderItem converts one raw line record, deriving whichever of the
// unit price and line total the wire format omitted. A record that carries
// both keeps both untouched, even when they disagree arithmetically.
func NormalizeOrderItem(o normalize.Object) OrderItem {
	item := OrderItem{
		ProductID: o.String("productId", "product_id"),
		Product:   normalizeProductSummary(o),
		Quantity:  o.Int("quantity"),
	}

	price := o.FloatPtr("price", "unit_price")
	lineTotal := o.FloatPtr("lineTotal", "line_total")
	item.Price, item.LineTotal = deriveAmounts(price, lineTotal, item.Quantity)
	return item
}

func normalizeProductSummary(o normalize.Object) *ProductSummary {
	nested, ok := o.Object("product")
	if !ok {
		return nil
	}
	return &ProductSummary{
		ID:    nested.String("id", "_id"),
		Name:  nested.String("name"),
		Price: nested.Float("price"),
	}
}

// deriveAmounts fills the absent side of the price pair. Division and
// multiplication run through decimals so derived amounts round the way money
// should, not the way float64 happens to.
func deriveAmounts(price, lineTotal *float64, quantity int) (float64, float64) {
	switch {
	case price != nil && lineTotal != nil:
		return *price, *lineTotal
	case price != nil:
		derived, _ := decimal.NewFromFloat(*price).
			Mul(decimal.NewFromInt(int64(quantity))).
			Round(2).Float64()
		return *price, derived
	case lineTotal != nil:
		if quantity <= 0 {
			return 0, *lineTotal
		}
		derived, _ := decimal.NewFromFloat(*lineTotal).
			Div(decimal.NewFromInt(int64(quantity))).
			Round(2).Float64()
		return derived, *lineTotal
	default:
		return 0, 0
	}
}
