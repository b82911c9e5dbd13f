package pubsub

import (
	"context"
	"fmt"

	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RedisPublisher struct {
	client *redis.Client
	logger *logger.CanonicalLogger
}

func NewRedisPublisher(ctx context.Context, cfg RedisConfig, log *logger.CanonicalLogger) (*RedisPublisher, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	log.Info("redis client initialized", logger.String("addr", addr))

	return &RedisPublisher{
		client: client,
		logger: log,
	}, nil
}

// Publish publishes a message to a Redis channel
func (r *RedisPublisher) Publish(ctx context.Context, channel string, message string) error {
	if err := r.client.Publish(ctx, channel, message).Err(); err != nil {
		r.logger.WithError(err).Error("failed to publish message to redis", logger.String(logger.FieldChannel, channel))
		return err
	}
	return nil
}

// Ping checks if Redis connection is healthy
func (r *RedisPublisher) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisPublisher) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.WithError(err).Error("failed to close redis client")
		return err
	}
	return nil
}
