package handler

import (
	"fmt"

	"storefront-service/internal/module/stats/models/request"
	"storefront-service/internal/module/stats/usecases"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type StatsHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *StatsHandler) Overview(ctx *fiber.Ctx) error {
	sess, _ := session.FromLocals(ctx)

	resp, err := h.Usecase.Overview(ctx.UserContext(), sess)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get overview: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get overview")
}

func (h *StatsHandler) Users(ctx *fiber.Ctx) error {
	sess, _ := session.FromLocals(ctx)

	resp, err := h.Usecase.Users(ctx.UserContext(), sess)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get users")
}

func (h *StatsHandler) Registrations(ctx *fiber.Ctx) error {
	sess, _ := session.FromLocals(ctx)

	resp, err := h.Usecase.Registrations(ctx.UserContext(), sess)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get registrations")
}

func (h *StatsHandler) Payments(ctx *fiber.Ctx) error {
	sess, _ := session.FromLocals(ctx)

	resp, err := h.Usecase.Payments(ctx.UserContext(), sess)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get payments")
}

func (h *StatsHandler) Revenue(ctx *fiber.Ctx) error {
	var query request.Revenue
	if err := ctx.QueryParser(&query); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	if err := h.Validator.Struct(query); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.Revenue(ctx.UserContext(), sess, &query)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get revenue: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get revenue")
}
