package main

// @title           Run Block Gateway API
// @version         1.0
// @description     Validates run-block configurations before a browser-automation run is started. Admitted configurations are normalized and optionally handed off over Redis pub/sub.
// @termsOfService  http://swagger.io/terms/
// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/Alwanly/service-runblock-gateway/docs/gateway"
	"github.com/Alwanly/service-runblock-gateway/internal/config"
	"github.com/Alwanly/service-runblock-gateway/internal/server/runblock/handler"
	"github.com/Alwanly/service-runblock-gateway/pkg/deps"
	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/Alwanly/service-runblock-gateway/pkg/middleware"
	"github.com/Alwanly/service-runblock-gateway/pkg/pubsub"
	"github.com/Alwanly/service-runblock-gateway/pkg/retry"
	swagger "github.com/gofiber/swagger"
)

func main() {
	log, err := logger.NewLoggerFromEnv("runblock-gateway")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting run-block gateway")

	cfg, err := config.LoadGatewayConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	log.Info("configuration loaded",
		logger.String("server_addr", cfg.ServerAddr),
		logger.Bool("default_model_configured", cfg.DefaultModel != ""),
		logger.Bool("default_api_key_configured", cfg.DefaultAPIKey != ""),
		logger.Bool("handoff_enabled", cfg.Redis != nil),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := fiber.New(fiber.Config{
		AppName:               "Run Block Gateway",
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.CanonicalLoggerMiddleware(log))

	d := deps.App{
		Fiber:  app,
		Logger: log,
	}

	if cfg.Redis != nil {
		redisPub, err := pubsub.NewRedisPublisher(ctx, pubsub.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, log)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize redis publisher")
		}
		d.Pub = pubsub.NewRetryingPublisher(redisPub, retry.Config{
			MaxRetries:     cfg.PublishMaxRetries,
			InitialBackoff: cfg.PublishInitialBackoff,
			MaxBackoff:     cfg.PublishMaxBackoff,
			Multiplier:     2.0,
			Jitter:         true,
		})
		defer d.Pub.Close()
		log.Info("admission hand-off enabled",
			logger.String("host", cfg.Redis.Host),
			logger.Int("port", cfg.Redis.Port),
			logger.String(logger.FieldChannel, cfg.AdmissionChannel))
	} else {
		log.Info("no Redis configuration provided; admitted configurations are returned only")
	}

	handler.NewHandler(d, cfg)

	app.Get("/swagger/*", swagger.HandlerDefault)

	gErr, gCtx := errgroup.WithContext(ctx)

	gErr.Go(func() error {
		log.Info("run-block gateway is running", logger.String("address", cfg.ServerAddr))
		if err := app.Listen(cfg.ServerAddr); err != nil {
			cancel()
			return err
		}
		return nil
	})

	gErr.Go(func() error {
		<-gCtx.Done()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("failed to shutdown fiber app")
			return err
		}
		return nil
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Info("shutdown signal received")
		cancel()
	}()

	if err := gErr.Wait(); err != nil {
		log.WithError(err).Fatal("run-block gateway encountered an error")
	}

	log.Info("run-block gateway stopped gracefully")
}
