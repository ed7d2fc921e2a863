package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, body string) *CompletionResponse {
	t.Helper()
	var resp CompletionResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return &resp
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain string content",
			body: `{"choices":[{"message":{"role":"assistant","content":"2019: 40\n2020: 12"}}]}`,
			want: "2019: 40\n2020: 12",
		},
		{
			name: "composite content joins titles",
			body: `{"choices":[{"message":{"content":[{"title":"Africa: 0"},{"tool_call":{"name":"search"}},{"title":"Europe: 70","tool_results":{"search_results":[{"title":"x","url":"https://example.org"}]}}]}}]}`,
			want: "Africa: 0\nEurope: 70",
		},
		{
			name: "non-object parts are skipped",
			body: `{"choices":[{"message":{"content":[42,{"title":"Oceania: 3"},null]}}]}`,
			want: "Oceania: 3",
		},
		{
			name: "only the first choice is used",
			body: `{"choices":[{"message":{"content":"first"}},{"message":{"content":"second"}}]}`,
			want: "first",
		},
		{
			name: "no choices",
			body: `{"id":"abc","choices":[]}`,
			want: NoContentSentinel,
		},
		{
			name: "null content",
			body: `{"choices":[{"message":{"content":null}}]}`,
			want: NoContentSentinel,
		},
		{
			name: "object content is neither shape",
			body: `{"choices":[{"message":{"content":{"text":"hi"}}}]}`,
			want: NoContentSentinel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(decodeResponse(t, tt.body)))
		})
	}
}

func TestExtractTextNilResponse(t *testing.T) {
	assert.Equal(t, NoContentSentinel, ExtractText(nil))
}

func TestCompletionResponseKeepsMetadata(t *testing.T) {
	resp := decodeResponse(t, `{
		"id":"cmpl-1","model":"sonar","created":1718000000,
		"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15},
		"citations":["https://example.org/a"],
		"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"ok"}}]
	}`)

	assert.Equal(t, "cmpl-1", resp.ID)
	assert.Equal(t, int64(1718000000), resp.Created)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	assert.Equal(t, []string{"https://example.org/a"}, resp.Citations)
}

func TestCheckRequest(t *testing.T) {
	msgs := []Message{{Role: RoleUser, Content: "hi"}}

	assert.NoError(t, CheckRequest(msgs, ModelSonar))
	assert.ErrorIs(t, CheckRequest(nil, ModelSonar), ErrNoMessages)
	assert.ErrorIs(t, CheckRequest(msgs, Model("gpt-4")), ErrUnsupportedModel)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, "ok", StatusOf(nil))
	assert.Equal(t, "configuration_error", StatusOf(&ConfigurationError{Reason: "x"}))
	assert.Equal(t, "upstream_error", StatusOf(&UpstreamError{StatusCode: 500}))
	assert.Equal(t, "transport_error", StatusOf(&TransportError{Op: "request", Err: assert.AnError}))
	assert.Equal(t, "error", StatusOf(assert.AnError))
}
