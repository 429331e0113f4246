package handler

import (
	"fmt"

	"storefront-service/internal/module/registration/models/request"
	"storefront-service/internal/module/registration/usecases"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type RegistrationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *RegistrationHandler) ListRegistrations(ctx *fiber.Ctx) error {
	sess, _ := session.FromLocals(ctx)

	resp, err := h.Usecase.ListRegistrations(ctx.UserContext(), sess)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list registrations: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list registrations")
}

func (h *RegistrationHandler) Register(ctx *fiber.Ctx) error {
	var req request.CreateRegistration
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.Register(ctx.UserContext(), sess, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success register event")
}

func (h *RegistrationHandler) Pay(ctx *fiber.Ctx) error {
	registrationID, err := helpers.ParamID(ctx, "registration_id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Pay
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.Pay(ctx.UserContext(), sess, registrationID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error pay registration: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success pay registration")
}

func (h *RegistrationHandler) Attend(ctx *fiber.Ctx) error {
	registrationID, err := helpers.ParamID(ctx, "registration_id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.Attend(ctx.UserContext(), sess, registrationID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error attend registration: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success attend event")
}

func (h *RegistrationHandler) Review(ctx *fiber.Ctx) error {
	registrationID, err := helpers.ParamID(ctx, "registration_id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Review
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.Review(ctx.UserContext(), sess, registrationID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error review registration: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success review event")
}
