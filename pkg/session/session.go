package session

import (
	"fmt"

	"github.com/angelmondragon/storegate/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated-user snapshot captured at login. It is read-only
// from the gateway's perspective; the backend owns the account record.
type User struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  enums.UserRole `json:"role"`
}

// Session pairs the backend access token with the user snapshot. It is built
// once per request (or once per login for SDK consumers) and passed explicitly
// to every typed client instead of living in ambient global state.
type Session struct {
	Token string
	User  User
}

// IsAdmin reports whether the session belongs to an admin account; nil-safe.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.Role == enums.UserRoleAdmin
}

// BearerToken returns the raw token for transport forwarding; nil-safe.
func (s *Session) BearerToken() string {
	if s == nil {
		return ""
	}
	return s.Token
}

// Claims are the fields the backend mints into its access tokens.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var signingMethod = jwt.SigningMethodHS256

// ParseToken validates the backend JWT against the shared secret and returns
// its typed claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// FromToken builds a minimal session from a verified token. The name and
// email fields stay empty until a profile fetch fills the snapshot; the token
// alone is enough for transport forwarding and role gating.
func FromToken(secret, tokenString string) (*Session, error) {
	claims, err := ParseToken(secret, tokenString)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token: tokenString,
		User: User{
			ID:   claims.UserID,
			Role: enums.UserRoleOrDefault(claims.Role),
		},
	}, nil
}
