package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-service/config"
	authHandler "storefront-service/internal/module/auth/handler"
	authRepositories "storefront-service/internal/module/auth/repositories"
	authUsecases "storefront-service/internal/module/auth/usecases"
	eventHandler "storefront-service/internal/module/event/handler"
	eventMocks "storefront-service/internal/module/event/mocks"
	registrationHandler "storefront-service/internal/module/registration/handler"
	registrationMocks "storefront-service/internal/module/registration/mocks"
	"storefront-service/internal/module/registration/models/response"
	statsHandler "storefront-service/internal/module/stats/handler"
	statsMocks "storefront-service/internal/module/stats/mocks"
	statsResponse "storefront-service/internal/module/stats/models/response"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/httpclient"
	log_internal "storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/middleware"
	router "storefront-service/internal/route"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	app          *fiber.App
	registration *registrationMocks.Usecase
	stats        *statsMocks.Usecase
}

func newFixture(t *testing.T, limiter *middleware.RateLimiter) fixture {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":null}`)
	}))
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := log_internal.GetLogger()
	otel := log_internal.Setup()
	fake := clock.Fake(now)
	validator := helpers.NewValidator()

	cfg := &config.HttpClientConfig{Timeout: 2 * time.Second, Threshold: 5}
	client := backend.New(srv.URL, httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, "")), logger)
	authRepo := authRepositories.New(client, logger, rdb)

	f := fixture{
		registration: &registrationMocks.Usecase{},
		stats:        &statsMocks.Usecase{},
	}
	handlers := router.Handlers{
		Auth:         &authHandler.AuthHandler{Log: otel, Validator: validator, Usecase: authUsecases.New(authRepo, logger, fake)},
		Event:        &eventHandler.EventHandler{Log: otel, Validator: validator, Usecase: &eventMocks.Usecase{}},
		Registration: &registrationHandler.RegistrationHandler{Log: otel, Validator: validator, Usecase: f.registration},
		Stats:        &statsHandler.StatsHandler{Log: otel, Validator: validator, Usecase: f.stats},
	}
	m := &middleware.Middleware{Log: otel, Repo: authRepo, Clock: fake}

	f.app = router.Initialize(fiber.New(), handlers, m, limiter)
	return f
}

func token(t *testing.T, id int64, role string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  now.Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func call(t *testing.T, app *fiber.App, method, path, tok string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, fiber.StatusOK, call(t, f.app, "GET", "/health", ""))
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	f := newFixture(t, nil)
	f.stats.On("Overview", mock.Anything, mock.Anything).Return(statsResponse.Overview{}, nil)

	assert.Equal(t, fiber.StatusUnauthorized, call(t, f.app, "GET", "/api/v1/admin/stats", ""))
	assert.Equal(t, fiber.StatusForbidden, call(t, f.app, "GET", "/api/v1/admin/stats", token(t, 2, "USER")))
	assert.Equal(t, fiber.StatusForbidden, call(t, f.app, "DELETE", "/api/v1/admin/events/1", token(t, 2, "USER")))
	assert.Equal(t, fiber.StatusOK, call(t, f.app, "GET", "/api/v1/admin/stats", token(t, 1, "ADMIN")))
	f.stats.AssertNumberOfCalls(t, "Overview", 1)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t, nil)
	tok := token(t, 7, "USER")
	f.registration.On("ListRegistrations", mock.Anything, mock.Anything).Return(response.RegistrationList{Registrations: []response.Registration{}}, nil)

	assert.Equal(t, fiber.StatusOK, call(t, f.app, "GET", "/api/v1/registrations", tok))
	assert.Equal(t, fiber.StatusOK, call(t, f.app, "POST", "/api/v1/auth/logout", tok))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, f.app, "GET", "/api/v1/registrations", tok))
	f.registration.AssertNumberOfCalls(t, "ListRegistrations", 1)
}

func TestRateLimiterGuardsApi(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute}, clock.Fake(now))
	f := newFixture(t, limiter)

	assert.Equal(t, fiber.StatusUnauthorized, call(t, f.app, "GET", "/api/v1/registrations", ""))
	assert.Equal(t, fiber.StatusTooManyRequests, call(t, f.app, "GET", "/api/v1/registrations", ""))
	assert.Equal(t, fiber.StatusOK, call(t, f.app, "GET", "/health", ""))
}
