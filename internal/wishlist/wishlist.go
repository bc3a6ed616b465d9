package wishlist

import (
	"context"
	"net/url"
	"strconv"

	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/normalize"
	"github.com/angelmondragon/storegate/pkg/pagination"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

// CategorySummary is the category embedded two levels deep on a wishlisted
// product.
type CategorySummary struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// ProductSummary is the product embedded on a wishlist item.
type ProductSummary struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Description *string          `json:"description,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	Category    *CategorySummary `json:"category,omitempty"`
}

// Item is one canonical wishlist entry.
type Item struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Product   *ProductSummary `json:"product,omitempty"`
	UserID    *string         `json:"userId,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

// NormalizeItem converts one raw wishlist record, including the nested
// product and its embedded category.
func NormalizeItem(o normalize.Object) Item {
	return Item{
		ID:        o.String("id", "_id"),
		ProductID: o.String("productId", "product_id"),
		Product:   normalizeProductSummary(o),
		UserID:    o.StringPtr("userId", "user_id"),
		CreatedAt: o.String("createdAt", "created_at"),
	}
}

func normalizeProductSummary(o normalize.Object) *ProductSummary {
	nested, ok := o.Object("product")
	if !ok {
		return nil
	}
	summary := &ProductSummary{
		ID:          nested.String("id", "_id"),
		Name:        nested.String("name"),
		Price:       nested.Float("price"),
		Description: nested.StringPtr("description"),
		CategoryID:  nested.StringPtr("categoryId", "category_id"),
	}
	if nested.Has("stock") {
		stock := nested.Int("stock")
		summary.Stock = &stock
	}
	if category, ok := nested.Object("category"); ok {
		summary.Category = &CategorySummary{
			Name:     category.String("name"),
			ImageURL: category.StringPtr("imageUrl", "image_url"),
		}
	}
	return summary
}

// Client exposes the caller's wishlist operations.
type Client struct {
	up   *upstream.Client
	logg *logger.Logger
}

func NewClient(up *upstream.Client, logg *logger.Logger) *Client {
	return &Client{up: up, logg: logg}
}

// List fetches one page of the caller's wishlist.
func (c *Client) List(ctx context.Context, token string, params pagination.Params) (pagination.Page[Item], error) {
	params = params.Normalize()
	query := url.Values{}
	query.Set("offset", strconv.Itoa(params.Offset()))
	query.Set("limit", strconv.Itoa(params.Limit))

	body, err := c.up.Get(ctx, "/wishlist", query, token)
	if err != nil {
		return pagination.Page[Item]{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "listing wishlist")
	}
	return pagination.BuildPage(body, NormalizeItem), nil
}

// addPayload carries the product id under both historical keys; the backend
// revisions disagree on which one they read.
type addPayload struct {
	ProductIDSnake string `json:"product_id"`
	ProductIDCamel string `json:"productId"`
}

// Add puts a product on the caller's wishlist.
func (c *Client) Add(ctx context.Context, token, productID string) (Item, error) {
	body, err := c.up.Post(ctx, "/wishlist", addPayload{ProductIDSnake: productID, ProductIDCamel: productID}, token)
	if err != nil {
		return Item{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "adding wishlist item")
	}
	return NormalizeItem(normalize.ExtractEntity(body)), nil
}

// Remove deletes a wishlist entry by its own id.
func (c *Client) Remove(ctx context.Context, token, id string) error {
	if _, err := c.up.Delete(ctx, "/wishlist/"+url.PathEscape(id), token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "removing wishlist item")
	}
	return nil
}
