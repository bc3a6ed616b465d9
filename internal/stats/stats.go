package stats

import (
	"context"

	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/normalize"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

// SalesStat is one per-category revenue aggregate. The backend's aggregation
// pipeline emits the category label under "_id", so id fallback applies to a
// name field here.
type SalesStat struct {
	Category      string  `json:"category"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalQuantity int     `json:"totalQuantity"`
	OrderCount    int     `json:"orderCount"`
}

// ProductStat is one per-product performance aggregate.
type ProductStat struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	CategoryName  string  `json:"categoryName"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// NormalizeSalesStat converts one raw sales aggregate record.
func NormalizeSalesStat(o normalize.Object) SalesStat {
	return SalesStat{
		Category:      o.String("category", "_id"),
		TotalRevenue:  o.Float("totalRevenue", "total_revenue"),
		TotalQuantity: o.Int("totalQuantity", "total_quantity"),
		OrderCount:    o.Int("orderCount", "order_count"),
	}
}

// NormalizeProductStat converts one raw product aggregate record.
func NormalizeProductStat(o normalize.Object) ProductStat {
	return ProductStat{
		Name:          o.String("name"),
		Price:         o.Float("price"),
		Stock:         o.Int("stock"),
		CategoryName:  o.String("categoryName", "category_name"),
		AverageRating: o.Float("averageRating", "average_rating"),
		ReviewCount:   o.Int("reviewCount", "review_count"),
	}
}

// Client exposes the admin reporting aggregates.
type Client struct {
	up   *upstream.Client
	logg *logger.Logger
}

func NewClient(up *upstream.Client, logg *logger.Logger) *Client {
	return &Client{up: up, logg: logg}
}

// Sales fetches the per-category revenue aggregates.
func (c *Client) Sales(ctx context.Context, token string) ([]SalesStat, error) {
	body, err := c.up.Get(ctx, "/admin/stats/sales", nil, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetching sales stats")
	}
	raw := normalize.ExtractItems(body)
	out := make([]SalesStat, 0, len(raw))
	for _, record := range raw {
		out = append(out, NormalizeSalesStat(record))
	}
	return out, nil
}

// Products fetches the per-product performance aggregates.
func (c *Client) Products(ctx context.Context, token string) ([]ProductStat, error) {
	body, err := c.up.Get(ctx, "/admin/stats/products", nil, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetching product stats")
	}
	raw := normalize.ExtractItems(body)
	out := make([]ProductStat, 0, len(raw))
	for _, record := range raw {
		out = append(out, NormalizeProductStat(record))
	}
	return out, nil
}
