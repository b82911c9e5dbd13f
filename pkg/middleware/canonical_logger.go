package middleware

import (
	"time"

	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CanonicalLoggerMiddleware logs once per request with every field the
// handler and usecase added to the request's LogContext.
func CanonicalLoggerMiddleware(log *logger.CanonicalLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logCtx := logger.NewLogContext()
		c.SetUserContext(logger.WithLogContext(c.UserContext(), logCtx))

		// set by the requestid middleware
		if id, ok := c.Locals("requestid").(string); ok && id != "" {
			logCtx.AddFields(zap.String(logger.FieldRequestID, id))
		}

		start := time.Now()

		// deferred so the line is written even when a later handler panics
		defer func() {
			duration := time.Since(start)
			status := c.Response().StatusCode()

			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Int64("duration_ms", duration.Milliseconds()),
			}
			fields = append(fields, logCtx.Fields()...)

			switch {
			case status >= 500:
				log.Error("http_request", fields...)
			case status >= 400:
				log.Info("http_request_client_error", fields...)
			default:
				log.Info("http_request", fields...)
			}
		}()

		return c.Next()
	}
}
