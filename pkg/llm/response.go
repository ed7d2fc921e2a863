package llm

import (
	"bytes"
	"encoding/json"
)

// CompletionResponse is the OpenAI-compatible body returned by /chat/completions.
type CompletionResponse struct {
	ID        string   `json:"id"`
	Model     string   `json:"model"`
	Created   int64    `json:"created"`
	Choices   []Choice `json:"choices"`
	Usage     Usage    `json:"usage"`
	Citations []string `json:"citations,omitempty"`
}

type Choice struct {
	Index        int             `json:"index"`
	FinishReason string          `json:"finish_reason"`
	Message      ResponseMessage `json:"message"`
}

type ResponseMessage struct {
	Role    string         `json:"role"`
	Content MessageContent `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// MessageContent is either a plain string or an ordered list of parts.
// When the upstream sends neither shape both fields stay empty.
type MessageContent struct {
	Text  *string
	Parts []ContentPart
}

// ContentPart is one element of composite content. Only Title is read;
// the tool fields are passed through untouched.
type ContentPart struct {
	Title       *string           `json:"title,omitempty"`
	ToolCall    json.RawMessage   `json:"tool_call,omitempty"`
	ToolResults *ToolResultBundle `json:"tool_results,omitempty"`
}

type ToolResultBundle struct {
	SearchResults []SearchSnippet `json:"search_results,omitempty"`
}

type SearchSnippet struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
	Date    string `json:"date,omitempty"`
}

// TextContent builds string content, mostly for adapters and tests.
func TextContent(s string) MessageContent {
	return MessageContent{Text: &s}
}

func (c *MessageContent) UnmarshalJSON(data []byte) error {
	*c = MessageContent{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		c.Text = &s
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		parts := make([]ContentPart, 0, len(raw))
		for _, r := range raw {
			var part ContentPart
			// Non-object parts are kept as empty parts so ordering survives.
			_ = json.Unmarshal(r, &part)
			parts = append(parts, part)
		}
		c.Parts = parts
	}
	return nil
}

func (c MessageContent) MarshalJSON() ([]byte, error) {
	switch {
	case c.Text != nil:
		return json.Marshal(*c.Text)
	case c.Parts != nil:
		return json.Marshal(c.Parts)
	default:
		return []byte("null"), nil
	}
}
