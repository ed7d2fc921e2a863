package nats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRoundTrip(t *testing.T) {
	assert.Equal(t, "events.research.completed", Subject("research.completed"))
	assert.Equal(t, "research.completed", EventType("events.research.completed"))
}

func TestDecodeEvent(t *testing.T) {
	event, err := decodeEvent("events.research.completed", []byte(`{"topic":"AI ethics","at":"2024-05-01T12:00:00Z"}`))
	require.NoError(t, err)

	assert.Equal(t, "research.completed", event.EventType())
	assert.Equal(t, "AI ethics", event.Payload()["topic"])
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), event.Timestamp())

	_, err = decodeEvent("events.x", []byte("nope"))
	assert.Error(t, err)
}

func TestNilPublisherIsDisconnected(t *testing.T) {
	var p *Publisher

	assert.False(t, p.Connected())
	p.Close()
}
