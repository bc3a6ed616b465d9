package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/normalize"
	"github.com/angelmondragon/storegate/pkg/pagination"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

// Client exposes the product and category operations of the legacy backend
// behind canonical types. Every response body passes through the normalizers,
// so callers never see the backend's envelope or naming drift.
type Client struct {
	up   *upstream.Client
	logg *logger.Logger
}

func NewClient(up *upstream.Client, logg *logger.Logger) *Client {
	return &Client{up: up, logg: logg}
}

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID string
}

// ListProducts fetches one page of products, optionally filtered by category.
func (c *Client) ListProducts(ctx context.Context, token string, filter ProductFilter, params pagination.Params) (pagination.Page[Product], error) {
	params = params.Normalize()
	query := url.Values{}
	query.Set("offset", strconv.Itoa(params.Offset()))
	query.Set("limit", strconv.Itoa(params.Limit))
	if filter.CategoryID != "" {
		query.Set("categoryId", filter.CategoryID)
	}

	body, err := c.up.Get(ctx, "/products", query, token)
	if err != nil {
		return pagination.Page[Product]{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "listing products")
	}
	return pagination.BuildPage(body, NormalizeProduct), nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, token, id string) (Product, error) {
	body, err := c.up.Get(ctx, "/products/"+url.PathEscape(id), nil, token)
	if err != nil {
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetching product")
	}
	raw := normalize.ExtractEntity(body)
	if raw == nil {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %s not found", id))
	}
	return NormalizeProduct(raw), nil
}

// CreateProduct creates a product through the admin surface.
func (c *Client) CreateProduct(ctx context.Context, token string, input CreateProductInput) (Product, error) {
	body, err := c.up.Post(ctx, "/admin/products", input, token)
	if err != nil {
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "creating product")
	}
	return NormalizeProduct(normalize.ExtractEntity(body)), nil
}

// UpdateProduct applies a partial update to a product.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, input UpdateProductInput) (Product, error) {
	body, err := c.up.Put(ctx, "/admin/products/"+url.PathEscape(id), input, token)
	if err != nil {
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "updating product")
	}
	return NormalizeProduct(normalize.ExtractEntity(body)), nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	if _, err := c.up.Delete(ctx, "/admin/products/"+url.PathEscape(id), token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "deleting product")
	}
	return nil
}

// AddReview posts a review onto a product and returns the updated product.
func (c *Client) AddReview(ctx context.Context, token, productID string, input AddReviewInput) (Product, error) {
	body, err := c.up.Post(ctx, "/admin/products/"+url.PathEscape(productID)+"/reviews", input, token)
	if err != nil {
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "adding review")
	}
	return NormalizeProduct(normalize.ExtractEntity(body)), nil
}

// ListCategories fetches one page of categories.
func (c *Client) ListCategories(ctx context.Context, token string, params pagination.Params) (pagination.Page[Category], error) {
	params = params.Normalize()
	query := url.Values{}
	query.Set("offset", strconv.Itoa(params.Offset()))
	query.Set("limit", strconv.Itoa(params.Limit))

	body, err := c.up.Get(ctx, "/categories", query, token)
	if err != nil {
		return pagination.Page[Category]{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "listing categories")
	}
	return pagination.BuildPage(body, NormalizeCategory), nil
}

// GetCategory fetches a single category by id.
func (c *Client) GetCategory(ctx context.Context, token, id string) (Category, error) {
	body, err := c.up.Get(ctx, "/categories/"+url.PathEscape(id), nil, token)
	if err != nil {
		return Category{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetching category")
	}
	raw := normalize.ExtractEntity(body)
	if raw == nil {
		return Category{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("category %s not found", id))
	}
	return NormalizeCategory(raw), nil
}

// CreateCategory creates a category through the admin surface.
func (c *Client) CreateCategory(ctx context.Context, token string, input CreateCategoryInput) (Category, error) {
	body, err := c.up.Post(ctx, "/admin/categories", input, token)
	if err != nil {
		return Category{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "creating category")
	}
	return NormalizeCategory(normalize.ExtractEntity(body)), nil
}

// UpdateCategory applies a partial update to a category.
func (c *Client) UpdateCategory(ctx context.Context, token, id string, input UpdateCategoryInput) (Category, error) {
	body, err := c.up.Put(ctx, "/admin/categories/"+url.PathEscape(id), input, token)
	if err != nil {
		return Category{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "updating category")
	}
	return NormalizeCategory(normalize.ExtractEntity(body)), nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	if _, err := c.up.Delete(ctx, "/admin/categories/"+url.PathEscape(id), token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "deleting category")
	}
	return nil
}
