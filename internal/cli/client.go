package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/pkg/serverutils"
)

// Client talks to a running research-gap server.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Search(ctx context.Context, topic string) (*dto.ResearchResultResponse, error) {
	var out dto.ResearchResultResponse
	if err := c.do(ctx, http.MethodGet, "/api/search?topic="+url.QueryEscape(topic), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Insights(ctx context.Context, topic string) (*dto.InsightsResponse, error) {
	var out dto.InsightsResponse
	if err := c.do(ctx, http.MethodGet, "/api/generate-insights?topic="+url.QueryEscape(topic), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SavedQueries(ctx context.Context) ([]dto.ResearchResultResponse, error) {
	var out serverutils.BaseResponse[[]dto.ResearchResultResponse]
	if err := c.do(ctx, http.MethodGet, "/api/saved-queries", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) DeleteSavedQuery(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/saved-queries/"+url.PathEscape(id), nil)
}

func (c *Client) History(ctx context.Context) ([]string, error) {
	var out serverutils.BaseResponse[dto.HistoryResponse]
	if err := c.do(ctx, http.MethodGet, "/api/history", &out); err != nil {
		return nil, err
	}
	return out.Data.Topics, nil
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope serverutils.BaseResponse[any]
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			msg = envelope.Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
