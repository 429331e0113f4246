package helpers

import (
	stderrors "errors"
	"time"

	"storefront-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespStatus(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespStatus(ctx, log, fiber.StatusCreated, data, message)
}

func RespStatus(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	log.Ctx(ctx.UserContext()).Debug(message, zap.Int("status", status), zap.String("path", ctx.Path()))
	return ctx.Status(status).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	status := errors.HTTPStatus(err)
	resp := Response{Message: errors.Message(err)}

	var ve *errors.ValidationError
	if stderrors.As(err, &ve) {
		resp.Errors = ve.Fields
	}

	if status >= fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error("request failed", zap.Error(err), zap.Int("status", status), zap.String("path", ctx.Path()))
	} else {
		log.Ctx(ctx.UserContext()).Warn("request rejected", zap.Error(err), zap.Int("status", status), zap.String("path", ctx.Path()))
	}

	return ctx.Status(status).JSON(resp)
}

// DurationCalculation returns how long from now until t, never negative.
func DurationCalculation(t time.Time) time.Duration {
	return DurationUntil(time.Now(), t)
}

func DurationUntil(now, t time.Time) time.Duration {
	d := t.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
