package sink

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/TomRegan/uuid"
)

// RedisSink appends UUIDs to a Redis list. Each batch is sent as one
// pipeline.
type RedisSink struct {
	rdb *redis.Client
	key string
}

// OpenRedis connects using a redis:// URL and checks the server responds.
func OpenRedis(ctx context.Context, url, key string) (*RedisSink, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisSink{rdb: rdb, key: key}, nil
}

func (s *RedisSink) Write(ctx context.Context, ids []uuid.UUID) error {
	_, err := s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, id := range ids {
			p.RPush(ctx, s.key, id.String())
		}
		return nil
	})
	return err
}

func (s *RedisSink) Close() error {
	return s.rdb.Close()
}
