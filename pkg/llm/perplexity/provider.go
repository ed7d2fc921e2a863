package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"research-gap-be/pkg/llm"
)

const DefaultBaseURL = "https://api.perplexity.ai"

type PerplexityProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Ensure PerplexityProvider implements Completer
var _ llm.Completer = &PerplexityProvider{}

type Option func(*PerplexityProvider)

func WithBaseURL(baseURL string) Option {
	return func(p *PerplexityProvider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(p *PerplexityProvider) {
		if client != nil {
			p.client = client
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(p *PerplexityProvider) {
		if timeout > 0 {
			// copy so a client passed through WithHTTPClient is left untouched
			c := *p.client
			c.Timeout = timeout
			p.client = &c
		}
	}
}

// Request Payload Structure (OpenAI Compatible)
type chatRequest struct {
	Model    llm.Model     `json:"model"`
	Messages []llm.Message `json:"messages"`
}

// NewPerplexityProvider fails fast with a ConfigurationError when apiKey is empty.
func NewPerplexityProvider(apiKey string, opts ...Option) (*PerplexityProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &llm.ConfigurationError{Reason: "PERPLEXITY_API_KEY is not configured"}
	}

	p := &PerplexityProvider{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

func (p *PerplexityProvider) Complete(ctx context.Context, messages []llm.Message, model llm.Model) (*llm.CompletionResponse, error) {
	if p.apiKey == "" {
		return nil, &llm.ConfigurationError{Reason: "PERPLEXITY_API_KEY is not configured"}
	}
	if err := llm.CheckRequest(messages, model); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(chatRequest{Model: model, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &llm.TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &llm.UpstreamError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var completion llm.CompletionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return nil, &llm.TransportError{Op: "decode response", Err: err}
	}

	return &completion, nil
}
