// Package feed implements the change feed over Redis pub/sub. It is the
// push half of the synchronized repository: writers publish the id of the
// changed document, watchers re-query the store on every message.
package feed

import (
	"context"
	"fmt"

	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultChannel = "applications:events"

type RedisChangeFeed struct {
	client  *redis.Client
	channel string
	log     *zap.Logger
}

var _ interfaces.IChangeFeed = (*RedisChangeFeed)(nil)

func NewRedisChangeFeed(client *redis.Client, log *zap.Logger) *RedisChangeFeed {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisChangeFeed{client: client, channel: defaultChannel, log: log}
}

func (f *RedisChangeFeed) Publish(ctx context.Context, event interfaces.ChangeEvent) error {
	if err := f.client.Publish(ctx, f.channel, event.ApplicationID).Err(); err != nil {
		return fmt.Errorf("%w: publish change event: %v", entities.ErrStoreUnavailable, err)
	}
	return nil
}

// Subscribe opens a dedicated pub/sub connection and relays its messages
// until the context is cancelled. The returned channel is closed and the
// connection released on cancellation; events published before the
// subscription is confirmed are not delivered, which is fine because
// every watcher loads an initial snapshot anyway.
func (f *RedisChangeFeed) Subscribe(ctx context.Context) (<-chan interfaces.ChangeEvent, error) {
	pubsub := f.client.Subscribe(ctx, f.channel)

	// Wait for the subscription confirmation so no event published after
	// Subscribe returns can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: subscribe change feed: %v", entities.ErrStoreUnavailable, err)
	}

	messages := pubsub.Channel()
	out := make(chan interfaces.ChangeEvent)
	go func() {
		defer close(out)
		defer func() {
			if err := pubsub.Close(); err != nil {
				f.log.Warn("closing change feed subscription", zap.Error(err))
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- interfaces.ChangeEvent{ApplicationID: msg.Payload}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
