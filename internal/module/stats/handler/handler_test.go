package handler_test

import (
	"net/http/httptest"
	"testing"

	"storefront-service/internal/module/stats/handler"
	"storefront-service/internal/module/stats/mocks"
	"storefront-service/internal/module/stats/models/request"
	"storefront-service/internal/module/stats/models/response"
	"storefront-service/internal/pkg/helpers"
	log_internal "storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h     *handler.StatsHandler
	ucm   *mocks.Usecase
	app   *fiber.App
	admin = session.Session{UserID: 1, Role: session.RoleAdmin, Token: "admin-token"}
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.StatsHandler{
		Log:       log_internal.Setup(),
		Validator: helpers.NewValidator(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		session.Store(ctx, admin)
		return ctx.Next()
	})
	app.Get("/stats", h.Overview)
	app.Get("/stats/revenue", h.Revenue)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestRevenue(t *testing.T) {
	setup()
	defer teardown()

	t.Run("yearly", func(t *testing.T) {
		ucm.On("Revenue", mock.Anything, admin, &request.Revenue{View: "yearly", Year: 2024}).Return(response.Revenue{View: "yearly", Year: 2024}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/stats/revenue?view=yearly&year=2024", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown view", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/stats/revenue?view=weekly", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestOverview(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("Overview", mock.Anything, admin).Return(response.Overview{Users: 3}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/stats", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ucm.AssertExpectations(t)
}
