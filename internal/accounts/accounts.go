package accounts

import (
	"context"

	"github.com/angelmondragon/storegate/pkg/enums"
	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/normalize"
	"github.com/angelmondragon/storegate/pkg/session"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

// LoginInput is the credential payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput creates a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// Client exposes the authentication endpoints. The backend's auth responses
// come in two shapes, a flat {access_token, user} and a wrapped
// {data: {user, token}}, so both normalize into the same session.
type Client struct {
	up   *upstream.Client
	logg *logger.Logger
}

func NewClient(up *upstream.Client, logg *logger.Logger) *Client {
	return &Client{up: up, logg: logg}
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, input LoginInput) (*session.Session, error) {
	body, err := c.up.Post(ctx, "/auth/login", input, "")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "logging in")
	}
	return sessionFromAuthBody(body)
}

// Register creates an account and returns the session when the backend
// minted one in the response.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*session.Session, error) {
	body, err := c.up.Post(ctx, "/auth/register", input, "")
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "registering")
	}
	return sessionFromAuthBody(body)
}

// RegisterAdmin creates an admin account through the admin surface. The
// caller's token authorizes the creation.
func (c *Client) RegisterAdmin(ctx context.Context, token string, input RegisterInput) (*session.Session, error) {
	body, err := c.up.Post(ctx, "/admin/auth/register", input, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "registering admin")
	}
	return sessionFromAuthBody(body)
}

// sessionFromAuthBody accepts both historical auth envelopes. The token lives
// at access_token on the flat shape and at token or access_token inside the
// data wrapper on the other.
func sessionFromAuthBody(body any) (*session.Session, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "auth response is not an object")
	}
	outer := normalize.Object(obj)

	scope := outer
	if inner, ok := outer.Object("data"); ok {
		scope = inner
	}

	token := scope.String("token", "access_token")
	if token == "" {
		token = outer.String("access_token")
	}
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, "auth response carries no token")
	}

	sess := &session.Session{Token: token}
	if rawUser, ok := scope.Object("user"); ok {
		sess.User = NormalizeUser(rawUser)
	}
	return sess, nil
}

// NormalizeUser converts a raw account record into the session snapshot.
func NormalizeUser(o normalize.Object) session.User {
	return session.User{
		ID:    o.String("id", "_id"),
		Name:  o.String("name", "username"),
		Email: o.String("email"),
		Role:  enums.UserRoleOrDefault(o.String("role")),
	}
}
