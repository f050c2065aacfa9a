package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"sitecms/internal/domain/record"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher sends change events to a Redis pub/sub channel.
type RedisPublisher struct {
	rdb     publisher
	channel string
	log     *slog.Logger
}

func NewRedisPublisher(rdb publisher, channel string, log *slog.Logger) *RedisPublisher {
	return &RedisPublisher{
		rdb:     rdb,
		channel: channel,
		log:     log.With("component", "redis_publisher"),
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev record.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}

	p.log.Debug("event published", "type", ev.Type, "id", ev.ID, "channel", p.channel)
	return nil
}
