package pubsub

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alwanly/service-runblock-gateway/pkg/logger"
	"github.com/Alwanly/service-runblock-gateway/pkg/retry"
)

func newTestPublisher(t *testing.T) (*RedisPublisher, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	pub, err := NewRedisPublisher(context.Background(), RedisConfig{Host: mr.Host(), Port: port}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })
	return pub, mr
}

func TestRedisPublisher_Publish(t *testing.T) {
	pub, mr := newTestPublisher(t)

	sub := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer sub.Close()
	ps := sub.Subscribe(context.Background(), "admissions")
	defer ps.Close()
	_, err := ps.Receive(context.Background())
	require.NoError(t, err)

	require.NoError(t, pub.Publish(context.Background(), "admissions", `{"admission_id":"rba_1"}`))

	select {
	case msg := <-ps.Channel():
		assert.Equal(t, "admissions", msg.Channel)
		assert.Equal(t, `{"admission_id":"rba_1"}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestNewRedisPublisher_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())
	mr.Close()

	_, err := NewRedisPublisher(context.Background(), RedisConfig{Host: mr.Host(), Port: port}, logger.NewNop())
	require.Error(t, err)
}

type flakyPublisher struct {
	failures int
	calls    int
}

func (f *flakyPublisher) Publish(ctx context.Context, channel string, message string) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("connection reset")
	}
	return nil
}

func (f *flakyPublisher) Close() error { return nil }

func TestRetryingPublisher(t *testing.T) {
	cfg := retry.Config{MaxRetries: 3, InitialBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond, Multiplier: 2}

	flaky := &flakyPublisher{failures: 2}
	require.NoError(t, NewRetryingPublisher(flaky, cfg).Publish(context.Background(), "c", "m"))
	assert.Equal(t, 3, flaky.calls)

	broken := &flakyPublisher{failures: 100}
	err := NewRetryingPublisher(broken, cfg).Publish(context.Background(), "c", "m")
	require.Error(t, err)
	assert.Equal(t, 4, broken.calls)
}

type canceledPublisher struct {
	calls int
}

func (c *canceledPublisher) Publish(ctx context.Context, channel string, message string) error {
	c.calls++
	return context.Canceled
}

func (c *canceledPublisher) Close() error { return nil }

func TestRetryingPublisher_StopsOnCancellation(t *testing.T) {
	cfg := retry.Config{MaxRetries: 5, InitialBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond, Multiplier: 2}

	pub := &canceledPublisher{}
	err := NewRetryingPublisher(pub, cfg).Publish(context.Background(), "c", "m")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, pub.calls)
}
