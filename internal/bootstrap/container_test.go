package bootstrap

import (
	"testing"

	"research-gap-be/internal/config"
	"research-gap-be/internal/pkg/logger"
	"research-gap-be/pkg/llm"
	"research-gap-be/pkg/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_MissingCredentialFailsFast(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "memory"}}

	c, err := NewContainer(nil, cfg)
	assert.Nil(t, c)
	assert.True(t, llm.IsConfigurationError(err))
}

func TestAssemble_MemoryStore(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "memory"}}

	c := Assemble(nil, cfg, &llmtest.Stub{}, logger.NewNopLogger())
	defer c.Close()

	require.NotNil(t, c.ResearchController)
	require.NotNil(t, c.SavedQueryController)
	require.NotNil(t, c.HistoryController)
	require.NotNil(t, c.ConsumerService)
	assert.NotNil(t, c.Metrics)
}

func TestAssemble_PostgresWithoutDBFallsBackToKeyValue(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "postgres"}}

	c := Assemble(nil, cfg, &llmtest.Stub{}, logger.NewNopLogger())
	defer c.Close()

	assert.NotNil(t, c.SavedQueryController)
}
