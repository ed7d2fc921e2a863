package factory

import (
	"fmt"
	"time"

	"research-gap-be/pkg/llm"
	"research-gap-be/pkg/llm/ollama"
	"research-gap-be/pkg/llm/perplexity"
)

type Config struct {
	Provider      string // "perplexity" or "ollama"
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	OllamaBaseURL string
	OllamaModel   string
}

func NewCompleter(cfg Config) (llm.Completer, error) {
	switch cfg.Provider {
	case "", "perplexity":
		p, err := perplexity.NewPerplexityProvider(cfg.APIKey,
			perplexity.WithBaseURL(cfg.BaseURL),
			perplexity.WithTimeout(cfg.Timeout),
		)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
