package implementation

import (
	"context"
	"testing"

	"research-gap-be/internal/entity"
	"research-gap-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(id, query string) *entity.ResearchResult {
	return &entity.ResearchResult{
		Id:       id,
		Query:    query,
		Regions:  []entity.NamedCount{{Name: "Africa", Count: 3}},
		Insights: []string{"insight for " + query},
	}
}

func TestKVSavedQueryRepository_UpsertKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewKVSavedQueryRepository(memory.NewKeyValueStore())

	require.NoError(t, repo.Upsert(ctx, result("a", "first")))
	require.NoError(t, repo.Upsert(ctx, result("b", "second")))
	require.NoError(t, repo.Upsert(ctx, result("a", "first, revised")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Id)
	assert.Equal(t, "first, revised", all[0].Query)
	assert.Equal(t, "b", all[1].Id)
	assert.Equal(t, []entity.NamedCount{{Name: "Africa", Count: 3}}, all[0].Regions)
}

func TestKVSavedQueryRepository_FindAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewKVSavedQueryRepository(memory.NewKeyValueStore())
	require.NoError(t, repo.Upsert(ctx, result("a", "first")))

	found, err := repo.FindById(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Query)

	missing, err := repo.FindById(ctx, "zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestKVSavedQueryRepository_AbsentOrCorruptValueIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKeyValueStore()
	repo := NewKVSavedQueryRepository(store)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	require.NoError(t, store.Set(ctx, SavedQueriesKey, "{not json"))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Upsert(ctx, result("a", "fresh")))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestKVSavedQueryRepository_StoresBrowserShape(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKeyValueStore()
	repo := NewKVSavedQueryRepository(store)
	require.NoError(t, repo.Upsert(ctx, result("a", "AI ethics")))

	raw, found, err := store.Get(ctx, SavedQueriesKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{
		"id":"a","query":"AI ethics","summary":"",
		"timeline":[],"regions":[{"name":"Africa","count":3}],"populations":[],"subtopics":[],
		"insights":["insight for AI ethics"],"suggestedQuestions":[],"degraded":false
	}]`, raw)
}
