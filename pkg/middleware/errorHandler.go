package middleware

import (
	"errors"

	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/Alwanly/service-runblock-gateway/pkg/wrapper"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler(log *logger.CanonicalLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		log.HTTPError(c.Method(), c.Path(), code, err)

		res := wrapper.ResponseFailed(code, err.Error(), nil)
		return c.Status(res.Code).JSON(res)
	}
}
