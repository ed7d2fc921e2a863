package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"research-gap-be/pkg/llm"
)

// OllamaProvider serves completions from a local Ollama daemon. The requested
// model identifier is validated but the configured local model answers.
type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

// Ensure OllamaProvider implements Completer
var _ llm.Completer = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Model           string        `json:"model"`
	CreatedAt       time.Time     `json:"created_at"`
	Message         ollamaMessage `json:"message"`
	Done            bool          `json:"done"`
	DoneReason      string        `json:"done_reason"`
	PromptEvalCount int           `json:"prompt_eval_count"`
	EvalCount       int           `json:"eval_count"`
}

// --- Interface Implementation ---

func (o *OllamaProvider) Complete(ctx context.Context, history []llm.Message, model llm.Model) (*llm.CompletionResponse, error) {
	if err := llm.CheckRequest(history, model); err != nil {
		return nil, err
	}

	ollamaMessages := make([]ollamaMessage, len(history))
	for i, msg := range history {
		ollamaMessages[i] = ollamaMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	payloadBytes, err := json.Marshal(ollamaChatRequest{
		Model:    o.ModelName,
		Messages: ollamaMessages,
		Stream:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := o.BaseURL + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, &llm.TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &llm.UpstreamError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var ollamaResp ollamaChatResponse
	if err := json.Unmarshal(bodyBytes, &ollamaResp); err != nil {
		return nil, &llm.TransportError{Op: "decode response", Err: err}
	}

	return &llm.CompletionResponse{
		ID:      fmt.Sprintf("ollama-%d", ollamaResp.CreatedAt.UnixNano()),
		Model:   ollamaResp.Model,
		Created: ollamaResp.CreatedAt.Unix(),
		Choices: []llm.Choice{{
			Index:        0,
			FinishReason: ollamaResp.DoneReason,
			Message: llm.ResponseMessage{
				Role:    llm.RoleAssistant,
				Content: llm.TextContent(ollamaResp.Message.Content),
			},
		}},
		Usage: llm.Usage{
			PromptTokens:     ollamaResp.PromptEvalCount,
			CompletionTokens: ollamaResp.EvalCount,
			TotalTokens:      ollamaResp.PromptEvalCount + ollamaResp.EvalCount,
		},
	}, nil
}
