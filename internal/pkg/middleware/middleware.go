package middleware

import (
	"fmt"

	"storefront-service/internal/module/auth/repositories"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log   *otelzap.Logger
	Repo  repositories.Repositories
	Clock clock.Clock
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	token, ok := session.BearerToken(ctx.Get(fiber.HeaderAuthorization))
	if !ok {
		m.Log.Ctx(ctx.UserContext()).Warn("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	sess, err := session.Decode(token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error decode token: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}

	if sess.Expired(m.Clock.Now()) {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("token expired"))
	}

	revoked, err := m.Repo.IsTokenRevoked(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}
	if revoked {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("session has been logged out"))
	}

	session.Store(ctx, sess)
	ctx.Locals("user_id", sess.UserID)

	return ctx.Next()
}

// OptionalSession attaches a session when a readable bearer token is present
// and lets the request through either way.
func (m *Middleware) OptionalSession(ctx *fiber.Ctx) error {
	token, ok := session.BearerToken(ctx.Get(fiber.HeaderAuthorization))
	if !ok {
		return ctx.Next()
	}
	if sess, err := session.Decode(token); err == nil && !sess.Expired(m.Clock.Now()) {
		session.Store(ctx, sess)
	}
	return ctx.Next()
}

// RequireRole must run after ValidateToken.
func (m *Middleware) RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sess, ok := session.FromLocals(ctx)
		if !ok {
			return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing session"))
		}
		if sess.Role != role {
			m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("user %d with role %s denied %s", sess.UserID, sess.Role, ctx.Path()))
			return helpers.RespError(ctx, m.Log, errors.Forbidden("access denied"))
		}
		return ctx.Next()
	}
}
