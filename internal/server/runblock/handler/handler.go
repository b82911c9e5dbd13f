package handler

import (
	"context"

	"github.com/Alwanly/service-runblock-gateway/internal/config"
	"github.com/Alwanly/service-runblock-gateway/internal/server/runblock/usecase"
	"github.com/Alwanly/service-runblock-gateway/pkg/deps"
	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/Alwanly/service-runblock-gateway/pkg/pubsub"
	"github.com/gofiber/fiber/v2"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Logger  *logger.CanonicalLogger
	UseCase usecase.UseCaseInterface
	Pub     pubsub.Publisher
}

func NewHandler(d deps.App, cfg *config.GatewayConfig) *Handler {
	uc := usecase.NewUseCase(usecase.UseCase{
		Defaults:  cfg.ModelDefaults(),
		Publisher: d.Pub,
		Channel:   cfg.AdmissionChannel,
		Logger:    d.Logger,
	})

	h := &Handler{
		Logger:  d.Logger,
		UseCase: uc,
		Pub:     d.Pub,
	}

	d.Fiber.Get("/health", h.health)

	routes := d.Fiber.Group("/run-blocks")
	routes.Post("/validate", h.validateRun)
	routes.Post("/login", h.login)
	routes.Post("/download-files", h.downloadFiles)

	return h
}

// validateRun godoc
// @Summary      Validate a run configuration
// @Description  Validate and normalize the configuration shared by every run-block request
// @Tags         run-blocks
// @Accept       json
// @Produce      json
// @Param        request body object true "Run configuration"
// @Success      200 {object} wrapper.JSONResult{data=dto.AdmissionResponse} "Configuration admitted"
// @Failure      400 {object} wrapper.JSONResult "Body is not a JSON object"
// @Failure      422 {object} wrapper.JSONResult{data=dto.RejectionResponse} "One or more fields violate a constraint"
// @Failure      503 {object} wrapper.JSONResult "Configuration could not be handed off"
// @Router       /run-blocks/validate [post]
func (h *Handler) validateRun(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "validate_run"))

	res := h.UseCase.AdmitRun(c.UserContext(), c.Body())
	return c.Status(res.Code).JSON(res)
}

// login godoc
// @Summary      Validate a login run configuration
// @Description  Validate a login request and resolve which credential backend supplies its secrets
// @Tags         run-blocks
// @Accept       json
// @Produce      json
// @Param        request body object true "Login configuration with credential_type and the selected backend identifiers"
// @Success      200 {object} wrapper.JSONResult{data=dto.AdmissionResponse} "Configuration admitted"
// @Failure      400 {object} wrapper.JSONResult "Body is not a JSON object"
// @Failure      422 {object} wrapper.JSONResult{data=dto.RejectionResponse} "One or more fields violate a constraint"
// @Failure      503 {object} wrapper.JSONResult "Configuration could not be handed off"
// @Router       /run-blocks/login [post]
func (h *Handler) login(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "validate_login"))

	res := h.UseCase.AdmitLogin(c.UserContext(), c.Body())
	return c.Status(res.Code).JSON(res)
}

// downloadFiles godoc
// @Summary      Validate a file-download run configuration
// @Tags         run-blocks
// @Accept       json
// @Produce      json
// @Param        request body object true "Download configuration; navigation_goal is required"
// @Success      200 {object} wrapper.JSONResult{data=dto.AdmissionResponse} "Configuration admitted"
// @Failure      400 {object} wrapper.JSONResult "Body is not a JSON object"
// @Failure      422 {object} wrapper.JSONResult{data=dto.RejectionResponse} "One or more fields violate a constraint"
// @Failure      503 {object} wrapper.JSONResult "Configuration could not be handed off"
// @Router       /run-blocks/download-files [post]
func (h *Handler) downloadFiles(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "validate_download_files"))

	res := h.UseCase.AdmitDownload(c.UserContext(), c.Body())
	return c.Status(res.Code).JSON(res)
}

// health godoc
// @Summary     Health check
// @Description Report gateway health, including the hand-off channel when one is configured
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     503 {object} map[string]string
// @Router      /health [get]
func (h *Handler) health(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "health_check"))

	if p, ok := h.Pub.(pinger); ok {
		if err := p.Ping(c.UserContext()); err != nil {
			logger.AddToContext(c.UserContext(), logger.Err(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "publisher": "unreachable"})
		}
	}
	return c.JSON(fiber.Map{"status": "healthy"})
}
