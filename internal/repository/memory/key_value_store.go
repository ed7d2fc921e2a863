package memory

import (
	"context"

	"research-gap-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// KeyValueStore keeps values in process memory. Entries never expire.
type KeyValueStore struct {
	cache *cache.Cache
}

func NewKeyValueStore() contract.KeyValueStore {
	return &KeyValueStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := s.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (s *KeyValueStore) Set(_ context.Context, key, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *KeyValueStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}
