package events

import (
	"context"
	"encoding/json"
	"fmt"

	"bitinglip/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// RedisBus pub/sub over a redis channel, shared by every replica
type RedisBus struct {
	client  *redis.Client
	channel string
	buffer  int
}

// NewRedisBus creates a bus on channel
func NewRedisBus(client *redis.Client, channel string, buffer int) *RedisBus {
	if buffer <= 0 {
		buffer = 1
	}
	return &RedisBus{client: client, channel: channel, buffer: buffer}
}

// Publish encodes e as JSON and publishes it
func (b *RedisBus) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Subscribe opens a redis subscription; the returned channel closes on cancel
// or when ctx is done.
func (b *RedisBus) Subscribe(ctx context.Context) (<-chan Event, func(), error) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	out := make(chan Event, b.buffer)
	msgs := pubsub.Channel()

	go func() {
		defer close(out)
		defer pubsub.Close()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var e Event
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					logger.WarnCtx(subCtx, "dropping malformed event: %v", err)
					continue
				}
				select {
				case out <- e:
				default:
				}
			}
		}
	}()

	return out, cancel, nil
}

// Close is a no-op; the redis client is owned by the application
func (b *RedisBus) Close() error {
	return nil
}
