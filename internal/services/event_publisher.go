package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// EventPublisher fans domain events out to external consumers (mail sender,
// analytics). Publishing is best-effort: failures are logged, never returned.
type EventPublisher interface {
	Publish(event string, payload interface{})
}

type RedisEventPublisher struct {
	redis   *redis.Client
	ctx     context.Context
	channel string
}

func NewRedisEventPublisher(ctx context.Context, redis *redis.Client, channel string) *RedisEventPublisher {
	return &RedisEventPublisher{
		redis:   redis,
		ctx:     ctx,
		channel: channel,
	}
}

func (ep *RedisEventPublisher) Publish(event string, payload interface{}) {
	body, err := json.Marshal(map[string]interface{}{
		"event":        event,
		"payload":      payload,
		"published_at": time.Now(),
	})
	if err != nil {
		log.Printf("Error marshalling %s event: %v", event, err)
		return
	}
	if err := ep.redis.Publish(ep.ctx, ep.channel, body).Err(); err != nil {
		log.Printf("Error publishing %s event: %v", event, err)
	}
}

// NopEventPublisher drops events; used when redis is not configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(string, interface{}) {}
