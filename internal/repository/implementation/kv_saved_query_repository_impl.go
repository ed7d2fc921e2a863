package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/entity"
	"research-gap-be/internal/mapper"
	"research-gap-be/internal/repository/contract"
)

// SavedQueriesKey is the single key holding the JSON array of saved results.
const SavedQueriesKey = "savedResearchQueries"

// KVSavedQueryRepository keeps every saved result in one JSON array value,
// the same layout the browser client uses. The mutex only serialises writers
// inside this process; concurrent processes are last-write-wins.
type KVSavedQueryRepository struct {
	store  contract.KeyValueStore
	key    string
	mapper *mapper.ResearchMapper
	mu     sync.Mutex
}

func NewKVSavedQueryRepository(store contract.KeyValueStore) contract.SavedQueryRepository {
	return &KVSavedQueryRepository{
		store:  store,
		key:    SavedQueriesKey,
		mapper: mapper.NewResearchMapper(),
	}
}

// load treats a missing or unparseable value as an empty list.
func (r *KVSavedQueryRepository) load(ctx context.Context) ([]*dto.ResearchResultResponse, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return []*dto.ResearchResultResponse{}, nil
	}

	var list []*dto.ResearchResultResponse
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []*dto.ResearchResultResponse{}, nil
	}
	return list, nil
}

func (r *KVSavedQueryRepository) save(ctx context.Context, list []*dto.ResearchResultResponse) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode saved queries: %w", err)
	}
	return r.store.Set(ctx, r.key, string(raw))
}

func (r *KVSavedQueryRepository) FindAll(ctx context.Context) ([]*entity.ResearchResult, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ResearchResult, 0, len(list))
	for _, item := range list {
		if item == nil {
			continue
		}
		out = append(out, r.mapper.FromResponse(item))
	}
	return out, nil
}

func (r *KVSavedQueryRepository) FindById(ctx context.Context, id string) (*entity.ResearchResult, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range list {
		if item != nil && item.Id == id {
			return r.mapper.FromResponse(item), nil
		}
	}
	return nil, nil
}

func (r *KVSavedQueryRepository) Upsert(ctx context.Context, result *entity.ResearchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}

	incoming := r.mapper.ToResponse(result)
	replaced := false
	for i, item := range list {
		if item != nil && item.Id == result.Id {
			list[i] = incoming
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, incoming)
	}
	return r.save(ctx, list)
}

func (r *KVSavedQueryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]*dto.ResearchResultResponse, 0, len(list))
	for _, item := range list {
		if item != nil && item.Id != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	return true, r.save(ctx, kept)
}
