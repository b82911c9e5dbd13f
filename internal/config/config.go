package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Alwanly/service-runblock-gateway/internal/runblock"
	"github.com/Alwanly/service-runblock-gateway/pkg/validator"
)

type RedisConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"gt=0,lte=65535"`
	Password string
	DB       int `validate:"gte=0"`
}

type GatewayConfig struct {
	ServerAddr string `validate:"required"`
	BodyLimit  int    `validate:"gt=0"`

	// Process-wide model defaults consulted by the model override rules.
	DefaultModel  string
	DefaultAPIKey string

	// Redis is nil when admitted configurations are not handed off.
	Redis                 *RedisConfig
	AdmissionChannel      string        `validate:"required"`
	PublishMaxRetries     int           `validate:"gte=0"`
	PublishInitialBackoff time.Duration `validate:"gt=0"`
	PublishMaxBackoff     time.Duration `validate:"gtefield=PublishInitialBackoff"`
}

// ModelDefaults snapshots the default model configuration. The snapshot is
// taken once at startup and never mutated afterwards.
func (c *GatewayConfig) ModelDefaults() runblock.ModelDefaults {
	return runblock.ModelDefaults{
		Model:  c.DefaultModel,
		APIKey: c.DefaultAPIKey,
	}
}

// LoadGatewayConfig reads gateway config from the environment, after loading
// ENV_FILE (default .env) when it exists. Variables already set in the
// environment win over the file.
func LoadGatewayConfig() (*GatewayConfig, error) {
	envFile := envOrDefault("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &GatewayConfig{
		ServerAddr:            envOrDefault("GATEWAY_ADDR", ":8080"),
		BodyLimit:             envInt("BODY_LIMIT_BYTES", 1<<20),
		DefaultModel:          os.Getenv("OPENROUTER_MODEL"),
		DefaultAPIKey:         os.Getenv("OPENROUTER_API_KEY"),
		AdmissionChannel:      envOrDefault("ADMISSION_CHANNEL", "run_block_admissions"),
		PublishMaxRetries:     envInt("PUBLISH_MAX_RETRIES", 3),
		PublishInitialBackoff: time.Duration(envInt("PUBLISH_INITIAL_BACKOFF_MS", 100)) * time.Millisecond,
		PublishMaxBackoff:     time.Duration(envInt("PUBLISH_MAX_BACKOFF_MS", 2000)) * time.Millisecond,
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis = &RedisConfig{
			Host:     host,
			Port:     envInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		}
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid gateway configuration: %v", validator.TranslateError(err))
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
