package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"research-gap-be/internal/repository/contract"
)

const (
	HistoryKey   = "recentResearchTopics"
	HistoryLimit = 20
)

// KVHistoryRepository keeps the most recent distinct topics, newest first,
// as a JSON array under one key.
type KVHistoryRepository struct {
	store contract.KeyValueStore
	mu    sync.Mutex
}

func NewKVHistoryRepository(store contract.KeyValueStore) contract.HistoryRepository {
	return &KVHistoryRepository{store: store}
}

func (r *KVHistoryRepository) Recent(ctx context.Context) ([]string, error) {
	raw, found, err := r.store.Get(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}
	topics := []string{}
	if !found || raw == "" {
		return topics, nil
	}
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		return []string{}, nil
	}
	return topics, nil
}

// Record moves topic to the front. Topics differing only in case or
// surrounding space count as the same topic.
func (r *KVHistoryRepository) Record(ctx context.Context, topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.Recent(ctx)
	if err != nil {
		return err
	}

	next := make([]string, 0, HistoryLimit)
	next = append(next, topic)
	for _, t := range current {
		if len(next) == HistoryLimit {
			break
		}
		if !strings.EqualFold(t, topic) {
			next = append(next, t)
		}
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return r.store.Set(ctx, HistoryKey, string(raw))
}
