package pubsub

import (
	"context"
	"errors"

	"github.com/Alwanly/service-runblock-gateway/pkg/retry"
)

// RetryingPublisher retries failed publishes with exponential backoff.
// Context cancellation is returned immediately.
type RetryingPublisher struct {
	next Publisher
	cfg  retry.Config
}

func NewRetryingPublisher(next Publisher, cfg retry.Config) *RetryingPublisher {
	return &RetryingPublisher{next: next, cfg: cfg}
}

func (p *RetryingPublisher) Publish(ctx context.Context, channel string, message string) error {
	return retry.WithExponentialBackoff(ctx, p.cfg, func(ctx context.Context) error {
		err := p.next.Publish(ctx, channel, message)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return retry.Permanent(err)
		}
		return err
	})
}

func (p *RetryingPublisher) Close() error {
	return p.next.Close()
}

// Ping forwards to the wrapped publisher when it supports health checks.
func (p *RetryingPublisher) Ping(ctx context.Context) error {
	if pg, ok := p.next.(interface{ Ping(context.Context) error }); ok {
		return pg.Ping(ctx)
	}
	return nil
}
