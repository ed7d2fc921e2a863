package dto

import "time"

// ResearchCompletedMessage is the watermill payload published after every
// pipeline run.
type ResearchCompletedMessage struct {
	Topic         string    `json:"topic"`
	Endpoint      string    `json:"endpoint"`
	Degraded      bool      `json:"degraded"`
	InsightCount  int       `json:"insightCount"`
	QuestionCount int       `json:"questionCount"`
	At            time.Time `json:"at"`
}
