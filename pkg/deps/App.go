package deps

import (
	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/Alwanly/service-runblock-gateway/pkg/pubsub"
	"github.com/gofiber/fiber/v2"
)

type App struct {
	Fiber  *fiber.App
	Logger *logger.CanonicalLogger
	// Pub is nil when admitted configurations are not handed off.
	Pub pubsub.Publisher
}
