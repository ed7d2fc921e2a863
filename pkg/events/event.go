package events

import "time"

// Event is anything that can be put on the bus: a type code used as the
// subject suffix, a flat JSON-able payload and the time it happened.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the generic shape events take after a round trip through a
// broker, when the concrete Go type is no longer known.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// FromPayload rebuilds an event from its type and decoded payload. The
// timestamp comes from the RFC3339 "at" field, or fallback when that is
// missing or malformed.
func FromPayload(eventType string, payload map[string]interface{}, fallback time.Time) BaseEvent {
	at := fallback
	if raw, ok := payload["at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			at = t
		}
	}
	return BaseEvent{Type: eventType, Data: payload, OccurredAt: at}
}

func (e BaseEvent) EventType() string              { return e.Type }
func (e BaseEvent) Payload() map[string]interface{} { return e.Data }
func (e BaseEvent) Timestamp() time.Time            { return e.OccurredAt }
