// Package session decodes the backend-issued bearer token into the
// identity the BFF routes on. Signatures are not checked here; the
// backend verifies every token it is handed.
package session

import (
	"strings"
	"time"

	"storefront-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	localsKey = "session"
)

type Session struct {
	UserID    int64     `json:"id"`
	Role      string    `json:"role"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

type claims struct {
	ID   jsonNumber `json:"id"`
	Role string     `json:"role"`
	jwt.RegisteredClaims
}

// Decode reads {id, role, exp} out of token.
func Decode(token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, errors.UnauthorizedError("missing token")
	}

	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Session{}, errors.UnauthorizedError("malformed token")
	}
	if c.ID <= 0 {
		return Session{}, errors.UnauthorizedError("token has no user id")
	}

	s := Session{
		UserID: int64(c.ID),
		Role:   strings.ToUpper(c.Role),
		Token:  token,
	}
	if s.Role == "" {
		s.Role = RoleUser
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s, nil
}

// Expired reports whether the token carries an exp that is not after now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(now)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func Store(ctx *fiber.Ctx, s Session) {
	ctx.Locals(localsKey, s)
}

// FromLocals returns the session stored by the auth middleware.
func FromLocals(ctx *fiber.Ctx) (Session, bool) {
	s, ok := ctx.Locals(localsKey).(Session)
	return s, ok
}
