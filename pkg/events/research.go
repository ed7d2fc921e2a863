package events

import "time"

const TypeResearchCompleted = "research.completed"

// ResearchCompletedEvent is emitted after every search or insight
// regeneration, degraded or not.
type ResearchCompletedEvent struct {
	Topic         string
	Endpoint      string
	Degraded      bool
	InsightCount  int
	QuestionCount int
	At            time.Time
}

func (e ResearchCompletedEvent) EventType() string {
	return TypeResearchCompleted
}

func (e ResearchCompletedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"topic":         e.Topic,
		"endpoint":      e.Endpoint,
		"degraded":      e.Degraded,
		"insightCount":  e.InsightCount,
		"questionCount": e.QuestionCount,
		"at":            e.At.UTC().Format(time.RFC3339),
	}
}

func (e ResearchCompletedEvent) Timestamp() time.Time {
	return e.At
}
