package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/playmatatu/tinko/internal/host"
	"github.com/redis/go-redis/v9"
)

// RedisEvents publishes host events on a redis channel so every server
// process watching the channel can relay them to its viewers.
type RedisEvents struct {
	rdb     *redis.Client
	channel string
}

func NewRedisEvents(rdb *redis.Client, channel string) *RedisEvents {
	return &RedisEvents{rdb: rdb, channel: channel}
}

func (r *RedisEvents) Publish(ctx context.Context, ev host.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := r.rdb.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}

// StartEventSubscriber relays events from the redis channel to the hub's
// viewers. It returns once the subscription is confirmed.
func StartEventSubscriber(ctx context.Context, rdb *redis.Client, channel string, hub *Hub) error {
	pubsub := rdb.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}

	ch := pubsub.Channel()
	go func() {
		defer pubsub.Close()
		log.Printf("[WS] %s subscriber started", channel)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev host.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Printf("[WS] invalid event payload: %v", err)
					continue
				}
				log.Printf("[WS] event received: type=%s score=%d", ev.Type, ev.Score)
				hub.Publish(ctx, ev)
			}
		}
	}()
	return nil
}
