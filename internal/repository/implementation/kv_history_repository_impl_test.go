package implementation

import (
	"context"
	"fmt"
	"testing"

	"research-gap-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVHistoryRepository_NewestFirstDeduplicated(t *testing.T) {
	ctx := context.Background()
	repo := NewKVHistoryRepository(memory.NewKeyValueStore())

	for _, topic := range []string{"AI ethics", "Mental Health in Africa", "  ai ethics ", ""} {
		require.NoError(t, repo.Record(ctx, topic))
	}

	topics, err := repo.Recent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ai ethics", "Mental Health in Africa"}, topics)
}

func TestKVHistoryRepository_Capped(t *testing.T) {
	ctx := context.Background()
	repo := NewKVHistoryRepository(memory.NewKeyValueStore())

	for i := 0; i < HistoryLimit+5; i++ {
		require.NoError(t, repo.Record(ctx, fmt.Sprintf("topic %d", i)))
	}

	topics, err := repo.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, topics, HistoryLimit)
	assert.Equal(t, fmt.Sprintf("topic %d", HistoryLimit+4), topics[0])
}
