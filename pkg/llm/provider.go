package llm

import (
	"context"
	"fmt"
)

// Roles understood by every chat-completion backend.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Model identifies a completion model accepted by the upstream service.
type Model string

const (
	ModelSonar             Model = "sonar"
	ModelSonarPro          Model = "sonar-pro"
	ModelSonarDeepResearch Model = "sonar-deep-research"
	ModelSonarReasoning    Model = "sonar-reasoning"
	ModelSonarReasoningPro Model = "sonar-reasoning-pro"
	ModelR1                Model = "r1-1776"
)

var supportedModels = map[Model]struct{}{
	ModelSonar:             {},
	ModelSonarPro:          {},
	ModelSonarDeepResearch: {},
	ModelSonarReasoning:    {},
	ModelSonarReasoningPro: {},
	ModelR1:                {},
}

// Valid reports whether m is one of the supported model identifiers.
func (m Model) Valid() bool {
	_, ok := supportedModels[m]
	return ok
}

// Completer defines the contract for any chat-completion backend.
// One call is one request/response exchange; implementations never retry.
type Completer interface {
	Complete(ctx context.Context, messages []Message, model Model) (*CompletionResponse, error)
}

// CheckRequest validates the arguments shared by every Completer.
func CheckRequest(messages []Message, model Model) error {
	if len(messages) == 0 {
		return ErrNoMessages
	}
	if !model.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedModel, model)
	}
	return nil
}
