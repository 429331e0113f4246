package handler

import (
	"fmt"

	"storefront-service/internal/module/auth/models/request"
	"storefront-service/internal/module/auth/usecases"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type AuthHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var req request.Register
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	user, err := h.Usecase.Register(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, user, "success register")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		if errors.IsKind(err, errors.KindUnauthorized) || errors.IsKind(err, errors.KindRejected) {
			return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("invalid email or password"))
		}
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success login")
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	sess, ok := session.FromLocals(ctx)
	if !ok {
		return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("missing session"))
	}

	if err := h.Usecase.Logout(ctx.UserContext(), sess); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error logout: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success logout")
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	sess, ok := session.FromLocals(ctx)
	if !ok {
		return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("missing session"))
	}

	user, err := h.Usecase.Me(ctx.UserContext(), sess)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, user, "success get profile")
}
