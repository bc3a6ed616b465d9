package users

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

// Client exposes account operations: the admin user listing and the caller's
// own profile.
type Client struct {
	up   *upstream.Client
	logg *logger.Logger
}

func NewClient(up *upstream.Client, logg *logger.Logger) *Client {
	return &Client{up: up, logg: logg}
}

// ListAdmin fetches one page of accounts from the admin surface.
func (c *Client) ListAdmin(ctx context.Context, token string, params pagination.Params) (pagination.Page[AdminUser], error) {
	params = params.Normalize()
	query := url.Values{}
	query.Set("offset", strconv.Itoa(params.Offset()))
	query.Set("limit", strconv.Itoa(params.Limit))

	body, err := c.up.Get(ctx, "/admin/users", query, token)
	if err != nil {
		return pagination.Page[AdminUser]{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "listing users")
	}
	return pagination.BuildPage(body, NormalizeAdminUser), nil
}

// Profile fetches the caller's own account record.
func (c *Client) Profile(ctx context.Context, token string) (Profile, error) {
	body, err := c.up.Get(ctx, "/profile", nil, token)
	if err != nil {
		return Profile{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetching profile")
	}
	raw := normalize.ExtractEntity(body)
	if raw == nil {
		return Profile{}, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
	}
	return NormalizeProfile(raw), nil
}

// UpdateProfile applies partial updates to the caller's own account record.
func (c *Client) UpdateProfile(ctx context.Context, token string, input UpdateProfileInput) (Profile, error) {
	body, err := c.up.Put(ctx, "/profile", input, token)
	if err != nil {
		return Profile{}, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "updating profile")
	}
	return NormalizeProfile(normalize.ExtractEntity(body)), nil
}
