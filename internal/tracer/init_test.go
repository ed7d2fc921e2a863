package tracer

import (
	"context"
	"testing"

	"research-gap-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabledIsNoop(t *testing.T) {
	shutdown := InitTracer(config.TracingConfig{Enabled: false})

	assert.NoError(t, shutdown(context.Background()))
}
