package helpers

import (
	"strconv"

	"storefront-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// ParamID reads a positive numeric route parameter.
func ParamID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Validation(name, "must be a positive number")
	}
	return id, nil
}
