// Package llmtest provides a scripted Completer for tests.
package llmtest

import (
	"context"
	"strings"
	"sync"

	"research-gap-be/pkg/llm"
)

// Route answers any request whose system prompt contains Match.
type Route struct {
	Match string
	Reply string
	Err   error
}

// Stub is a concurrency-safe llm.Completer that answers from a route table.
// Requests that match no route get Fallback (or FallbackErr).
type Stub struct {
	Routes      []Route
	Fallback    string
	FallbackErr error

	mu    sync.Mutex
	calls []Call
}

type Call struct {
	Model    llm.Model
	Messages []llm.Message
}

func (s *Stub) Complete(_ context.Context, messages []llm.Message, model llm.Model) (*llm.CompletionResponse, error) {
	if err := llm.CheckRequest(messages, model); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{Model: model, Messages: messages})
	s.mu.Unlock()

	system := messages[0].Content
	for _, r := range s.Routes {
		if strings.Contains(system, r.Match) {
			if r.Err != nil {
				return nil, r.Err
			}
			return Reply(r.Reply), nil
		}
	}
	if s.FallbackErr != nil {
		return nil, s.FallbackErr
	}
	return Reply(s.Fallback), nil
}

func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Reply wraps text as a single-choice completion.
func Reply(text string) *llm.CompletionResponse {
	return &llm.CompletionResponse{
		Model: string(llm.ModelSonar),
		Choices: []llm.Choice{{
			Message: llm.ResponseMessage{Role: llm.RoleAssistant, Content: llm.TextContent(text)},
		}},
	}
}
