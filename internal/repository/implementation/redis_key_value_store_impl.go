package implementation

import (
	"context"
	"errors"

	"research-gap-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RedisKeyValueStore struct {
	rdb *redis.Client
}

func NewRedisKeyValueStore(rdb *redis.Client) contract.KeyValueStore {
	return &RedisKeyValueStore{rdb: rdb}
}

func (s *RedisKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
