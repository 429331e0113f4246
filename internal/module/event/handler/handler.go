package handler

import (
	"context"
	"fmt"
	"strconv"

	"storefront-service/internal/module/event/models/request"
	"storefront-service/internal/module/event/usecases"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/scheduler"
	"storefront-service/internal/pkg/session"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const HeaderClientID = "X-Client-ID"

type EventHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *EventHandler) ListEvents(ctx *fiber.Ctx) error {
	query, err := h.parseQuery(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ListEvents(ctx.UserContext(), query)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list events: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list events")
}

// SearchEvents is the debounced listing: only the last search a client makes
// within the debounce window is answered with results.
func (h *EventHandler) SearchEvents(ctx *fiber.Ctx) error {
	query, err := h.parseQuery(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SearchEvents(ctx.UserContext(), clientKey(ctx), query)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success search events")
}

func (h *EventHandler) GetEvent(ctx *fiber.Ctx) error {
	eventID, err := helpers.ParamID(ctx, "event_id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetEvent(ctx.UserContext(), eventID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get event")
}

func (h *EventHandler) AdminListEvents(ctx *fiber.Ctx) error {
	sess, _ := session.FromLocals(ctx)

	resp, err := h.Usecase.AdminListEvents(ctx.UserContext(), sess)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list events")
}

func (h *EventHandler) AdminGetEvent(ctx *fiber.Ctx) error {
	sess, _ := session.FromLocals(ctx)
	eventID, err := helpers.ParamID(ctx, "event_id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.AdminGetEvent(ctx.UserContext(), sess, eventID)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get event")
}

func (h *EventHandler) CreateEvent(ctx *fiber.Ctx) error {
	var req request.UpsertEvent
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.CreateEvent(ctx.UserContext(), sess, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create event")
}

func (h *EventHandler) UpdateEvent(ctx *fiber.Ctx) error {
	eventID, err := helpers.ParamID(ctx, "event_id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpsertEvent
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.UpdateEvent(ctx.UserContext(), sess, eventID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update event")
}

func (h *EventHandler) DeleteEvent(ctx *fiber.Ctx) error {
	eventID, err := helpers.ParamID(ctx, "event_id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	sess, _ := session.FromLocals(ctx)
	if err := h.Usecase.DeleteEvent(ctx.UserContext(), sess, eventID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete event")
}

func (h *EventHandler) CreateDiscount(ctx *fiber.Ctx) error {
	var req request.CreateDiscount
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, helpers.ValidationErrors(err))
	}

	sess, _ := session.FromLocals(ctx)
	resp, err := h.Usecase.CreateDiscount(ctx.UserContext(), sess, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create discount: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create discount")
}

// ConsumeEventChanged purges cached listings. Failures go to the poison queue.
func (h *EventHandler) ConsumeEventChanged(msg *message.Message) error {
	var req request.EventChanged
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Usecase.ConsumeEventChanged(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume event_changed: %v", err))
		return err
	}

	return nil
}

func (h *EventHandler) PurgeEventCache(ctx context.Context, t *asynq.Task) error {
	var req scheduler.PurgeEventCache
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Usecase.PurgeEventCache(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error purge event cache: %v", err))
		return err
	}

	return nil
}

func (h *EventHandler) parseQuery(ctx *fiber.Ctx) (*request.ListEvents, error) {
	var query request.ListEvents
	if err := ctx.QueryParser(&query); err != nil {
		return nil, errors.BadRequest("error parse query")
	}
	if err := h.Validator.Struct(query); err != nil {
		return nil, helpers.ValidationErrors(err)
	}
	return &query, nil
}

func clientKey(ctx *fiber.Ctx) string {
	if sess, ok := session.FromLocals(ctx); ok {
		return "user:" + strconv.FormatInt(sess.UserID, 10)
	}
	if id := ctx.Get(HeaderClientID); id != "" {
		return "client:" + id
	}
	return "ip:" + ctx.IP()
}
