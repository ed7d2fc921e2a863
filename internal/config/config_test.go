package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("PERPLEXITY_TIMEOUT_SECONDS", "")

	cfg := Load()

	assert.Equal(t, "", cfg.Perplexity.APIKey)
	assert.Equal(t, 120*time.Second, cfg.Perplexity.Timeout)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test")
	t.Setenv("PERPLEXITY_TIMEOUT_SECONDS", "30")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, "pplx-test", cfg.Perplexity.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Perplexity.Timeout)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.True(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.IsProduction())
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "twelve")

	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
}
