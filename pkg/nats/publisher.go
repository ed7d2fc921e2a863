package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"research-gap-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const publishTimeout = 3 * time.Second

// Publisher forwards events to JetStream.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewPublisher(url string) (*Publisher, error) {
	nc, js, err := connect(url, "research-gap-be-publisher")
	if err != nil {
		return nil, err
	}

	if err := ensureStream(context.Background(), js); err != nil {
		log.Printf("Warn: Failed to ensure stream '%s': %v", StreamName, err)
	}

	return &Publisher{nc: nc, js: js}, nil
}

// Publish sends the event payload to "events.<type>". The call is bounded by
// a short timeout so a stalled broker cannot hold up the caller.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	if !p.Connected() {
		return fmt.Errorf("nats publisher is not connected")
	}

	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	subject := Subject(event.EventType())
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Connected() bool {
	return p != nil && p.nc != nil && p.nc.IsConnected()
}

func (p *Publisher) Close() {
	if p != nil && p.nc != nil {
		p.nc.Close()
	}
}
