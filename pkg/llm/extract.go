package llm

import "strings"

// NoContentSentinel is returned by ExtractText when nothing usable came back.
const NoContentSentinel = "No detailed contents available."

// ExtractText returns the best-effort plain text of the first choice.
// String content is returned verbatim; composite content is reduced to the
// titles of its parts joined by newlines. It never fails.
func ExtractText(resp *CompletionResponse) string {
	if resp == nil || len(resp.Choices) == 0 {
		return NoContentSentinel
	}

	content := resp.Choices[0].Message.Content
	if content.Text != nil {
		return *content.Text
	}

	if content.Parts != nil {
		titles := make([]string, 0, len(content.Parts))
		for _, part := range content.Parts {
			if part.Title == nil || *part.Title == "" {
				continue
			}
			titles = append(titles, *part.Title)
		}
		return strings.Join(titles, "\n")
	}

	return NoContentSentinel
}
