package implementation

import (
	"context"
	"testing"

	"research-gap-be/internal/entity"
	"research-gap-be/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.SavedResearchQuery{}))
	return db
}

func ids(results []*entity.ResearchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Id)
	}
	return out
}

func TestSavedQueryRepository_ReplaceKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewSavedQueryRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(ctx, result("a", "first")))
	require.NoError(t, repo.Upsert(ctx, result("b", "second")))
	require.NoError(t, repo.Upsert(ctx, result("c", "third")))
	require.NoError(t, repo.Upsert(ctx, result("a", "first, revised")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(all))
	assert.Equal(t, "first, revised", all[0].Query)
	assert.Equal(t, []entity.NamedCount{{Name: "Africa", Count: 3}}, all[0].Regions)
	assert.Equal(t, []string{"insight for first, revised"}, all[0].Insights)
}

func TestSavedQueryRepository_FindById(t *testing.T) {
	ctx := context.Background()
	repo := NewSavedQueryRepository(newTestDB(t))
	require.NoError(t, repo.Upsert(ctx, result("a", "first")))

	found, err := repo.FindById(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Query)

	missing, err := repo.FindById(ctx, "zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSavedQueryRepository_DeleteThenAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewSavedQueryRepository(newTestDB(t))
	require.NoError(t, repo.Upsert(ctx, result("a", "first")))
	require.NoError(t, repo.Upsert(ctx, result("b", "second")))
	require.NoError(t, repo.Upsert(ctx, result("c", "third")))

	deleted, err := repo.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, "c")
	require.NoError(t, err)
	assert.True(t, deleted)

	require.NoError(t, repo.Upsert(ctx, result("d", "fourth")))
	require.NoError(t, repo.Upsert(ctx, result("c", "third, again")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(all))
}

func TestSavedQueryRepository_EmptyTable(t *testing.T) {
	repo := NewSavedQueryRepository(newTestDB(t))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
