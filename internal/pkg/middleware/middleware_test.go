package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"storefront-service/config"
	"storefront-service/internal/module/auth/mocks"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/errors"
	log_internal "storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/middleware"
	"storefront-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func newApp(repo *mocks.Repositories) *fiber.App {
	m := &middleware.Middleware{Log: log_internal.Setup(), Repo: repo, Clock: clock.Fake(now)}
	app := fiber.New()
	app.Get("/me", m.ValidateToken, func(c *fiber.Ctx) error {
		sess, _ := session.FromLocals(c)
		return c.JSON(sess)
	})
	app.Get("/admin", m.ValidateToken, m.RequireRole(session.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/public", m.OptionalSession, func(c *fiber.Ctx) error {
		if _, ok := session.FromLocals(c); ok {
			return c.SendString("session")
		}
		return c.SendString("anonymous")
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, tok string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestValidateToken(t *testing.T) {
	repo := &mocks.Repositories{}
	app := newApp(repo)

	user := token(t, jwt.MapClaims{"id": 1, "role": "USER", "exp": now.Add(time.Hour).Unix()})
	revoked := token(t, jwt.MapClaims{"id": 2, "role": "USER"})
	expired := token(t, jwt.MapClaims{"id": 3, "role": "USER", "exp": now.Add(-time.Minute).Unix()})
	broken := token(t, jwt.MapClaims{"id": 4})

	repo.On("IsTokenRevoked", mock.Anything, user).Return(false, nil)
	repo.On("IsTokenRevoked", mock.Anything, revoked).Return(true, nil)
	repo.On("IsTokenRevoked", mock.Anything, broken).Return(false, errors.InternalServerError("redis down"))

	assert.Equal(t, fiber.StatusOK, get(t, app, "/me", user))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", ""))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", "not-a-jwt"))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", revoked))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", expired))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", broken))
}

func TestRequireRole(t *testing.T) {
	repo := &mocks.Repositories{}
	app := newApp(repo)
	repo.On("IsTokenRevoked", mock.Anything, mock.Anything).Return(false, nil)

	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/admin", token(t, jwt.MapClaims{"id": 1, "role": "USER"})))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/admin", token(t, jwt.MapClaims{"id": 2, "role": "ADMIN"})))
}

func TestOptionalSession(t *testing.T) {
	app := newApp(&mocks.Repositories{})

	for _, tc := range []struct {
		tok  string
		want string
	}{
		{"", "anonymous"},
		{"garbage", "anonymous"},
		{token(t, jwt.MapClaims{"id": 1}), "session"},
	} {
		req := httptest.NewRequest("GET", "/public", nil)
		if tc.tok != "" {
			req.Header.Set("Authorization", "Bearer "+tc.tok)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		buf := make([]byte, 16)
		n, _ := resp.Body.Read(buf)
		assert.Equal(t, tc.want, string(buf[:n]))
	}
}

func TestRateLimiter(t *testing.T) {
	fake := clock.Fake(now)
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 2, IdleTTL: time.Minute}, fake)
	app := fiber.New()
	app.Get("/", rl.Handler(middleware.ByIP), func(c *fiber.Ctx) error { return c.SendString("ok") })

	assert.Equal(t, fiber.StatusOK, get(t, app, "/", ""))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/", ""))
	assert.Equal(t, fiber.StatusTooManyRequests, get(t, app, "/", ""))

	fake.Advance(time.Second)
	assert.Equal(t, fiber.StatusOK, get(t, app, "/", ""))

	fake.Advance(2 * time.Minute)
	assert.Equal(t, 1, rl.Evict())
}
