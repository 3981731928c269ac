package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/providers"
	redisclient "github.com/zatekoja/hivclinic/internal/infrastructure/clients/redis"
	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
)

// DefaultChannel is the pub/sub channel notifications are published on
const DefaultChannel = "clinic:notifications"

// RedisNotifier publishes notifications over Redis pub/sub so a separate
// watcher process can display them.
type RedisNotifier struct {
	client  *redisclient.Client
	channel string
	metrics *observability.Metrics
}

// NewRedisNotifier creates a Redis pub/sub notifier
func NewRedisNotifier(client *redisclient.Client, channel string, metrics *observability.Metrics) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{
		client:  client,
		channel: channel,
		metrics: metrics,
	}
}

// Notify publishes note. Publish failures are logged, never returned:
// a lost toast must not fail the mutation that produced it.
func (n *RedisNotifier) Notify(ctx context.Context, note providers.Notification) {
	if note.Time.IsZero() {
		note.Time = time.Now()
	}
	if err := n.Publish(ctx, note); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("channel", n.channel).Msg("notification dropped")
		return
	}
	observability.RecordNotification(ctx, n.metrics, string(note.Level))
}

// Publish sends note to the channel
func (n *RedisNotifier) Publish(ctx context.Context, note providers.Notification) error {
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := n.client.Client().Publish(ctx, n.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Subscribe streams notifications until ctx is cancelled. The returned
// channel is closed when the subscription ends.
func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan providers.Notification, error) {
	pubsub := n.client.Client().Subscribe(ctx, n.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", n.channel, err)
	}

	out := make(chan providers.Notification, 100)
	go func() {
		defer close(out)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var note providers.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &note); err != nil {
					observability.GetLogger().Warn().Err(err).Str("channel", n.channel).Msg("invalid notification payload")
					continue
				}
				select {
				case out <- note:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
