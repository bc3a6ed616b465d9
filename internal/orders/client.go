package orders

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

// Client exposes the order operations of the legacy backend behind canonical
// types.
type Client struct {
	up   *upstream.Client
	logg *logger.Logger
}

func NewClient(up *upstream.Client, logg *logger.Logger) *Client {
	return &Client{up: up, logg: logg}
}

// List fetches one page of the caller's orders.
func (c *Client) List(ctx context.Context, token string, params pagination.Params) (pagination.Page[Order], error) {
	params = params.Normalize()
	query := url.Values{}
	query.Set("offset", strconv.Itoa(params.Offset()))
	query.Set("limit", strconv.Itoa(params.Limit))

	body, err := c.up.Get(ctx, "/orders", query, token)
	if err != nil {
		return pagination.Page[Order]{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "listing orders")
	}
	return pagination.BuildPage(body, NormalizeOrder), nil
}

// Get fetches a single order by id.
func (c *Client) Get(ctx context.Context, token, id string) (Order, error) {
	body, err := c.up.Get(ctx, "/orders/"+url.PathEscape(id), nil, token)
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetching order")
	}
	raw := normalize.ExtractEntity(body)
	if raw == nil {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order %s not found", id))
	}
	return NormalizeOrder(raw), nil
}

// Create places a new order for the caller.
func (c *Client) Create(ctx context.Context, token string, input CreateOrderInput) (Order, error) {
	body, err := c.up.Post(ctx, "/orders", input, token)
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "creating order")
	}
	return NormalizeOrder(normalize.ExtractEntity(body)), nil
}

// UpdateStatus moves an order to a new state through the admin surface.
func (c *Client) UpdateStatus(ctx context.Context, token, id string, input UpdateStatusInput) (Order, error) {
	body, err := c.up.Put(ctx, "/admin/orders/"+url.PathEscape(id)+"/status", input, token)
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "updating order status")
	}
	return NormalizeOrder(normalize.ExtractEntity(body)), nil
}

// Find runs the admin order search. The offset and limit inside the input
// are taken as is; callers convert pages through pagination.Params first.
func (c *Client) Find(ctx context.Context, token string, input FindInput) (pagination.Page[Order], error) {
	if input.Limit <= 0 {
		input.Limit = pagination.DefaultLimit
	}

	body, err := c.up.Post(ctx, "/admin/orders/find", input, token)
	if err != nil {
		return pagination.Page[Order]{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "searching orders")
	}
	return pagination.BuildPage(body, NormalizeOrder), nil
}

// Delete removes an order.
func (c *Client) Delete(ctx context.Context, token, id string) error {
	if _, err := c.up.Delete(ctx, "/orders/"+url.PathEscape(id), token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "deleting order")
	}
	return nil
}
