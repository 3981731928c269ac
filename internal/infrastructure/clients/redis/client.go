package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
	"github.com/zatekoja/hivclinic/pkg/config"
	"github.com/zatekoja/hivclinic/pkg/retry"
)

// Client represents a Redis client
type Client struct {
	client *redis.Client
}

// NewClient creates a new Redis client and waits for it to answer PING
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*Client, error) {
	return newClient(ctx, &redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}, retry.DefaultConfig())
}

// NewClientFromAddr connects to addr with no password on DB 0
func NewClientFromAddr(ctx context.Context, addr string) (*Client, error) {
	return newClient(ctx, &redis.Options{Addr: addr}, retry.Config{MaxAttempts: 1})
}

func newClient(ctx context.Context, opts *redis.Options, retryCfg retry.Config) (*Client, error) {
	client := redis.NewClient(opts)

	err := retry.DoWithLog(ctx, retryCfg, "redis", func() error {
		err := client.Ping(ctx).Err()
		if err != nil && isAuthError(err) {
			return retry.Permanent(err)
		}
		return err
	}, func(attempt int, err error, nextDelay time.Duration) {
		observability.GetLogger().Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("next_delay", nextDelay).
			Str("addr", opts.Addr).
			Msg("redis not ready, retrying")
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client}, nil
}

func isAuthError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "WRONGPASS") || strings.Contains(msg, "NOAUTH")
}

// Client returns the underlying Redis client
func (c *Client) Client() *redis.Client {
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// Ping verifies the connection to Redis
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
