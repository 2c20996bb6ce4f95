package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisFlashRepository keeps flashes in a per-session list with a TTL.
type RedisFlashRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFlashRepository(client *redis.Client, ttl time.Duration) FlashRepositoryInterface {
	return &RedisFlashRepository{client: client, ttl: ttl}
}

func (r *RedisFlashRepository) Push(ctx context.Context, sessionID string, flash Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("flash marshal: %w", err)
	}
	key := flashKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	return err
}

func (r *RedisFlashRepository) Pop(ctx context.Context, sessionID string) ([]Flash, error) {
	key := flashKey(sessionID)

	var lrange *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, err
	}

	raw, err := lrange.Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}
