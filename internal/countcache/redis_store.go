package countcache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит счётчики в Redis под ключом "count:<entity>".
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, entity string) (int64, bool, error) {
	val, err := s.Client.Get(ctx, countKey(entity)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

func (s *RedisStore) Put(ctx context.Context, entity string, count int64, ttl time.Duration) error {
	return s.Client.Set(ctx, countKey(entity), count, ttl).Err()
}

func countKey(entity string) string {
	return "count:" + entity
}
