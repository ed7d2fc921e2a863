package gap

import (
	"context"
	"regexp"
	"strings"

	"research-gap-be/internal/pkg/logger"
	"research-gap-be/pkg/llm"
)

const (
	NoSummary            = "No summary available"
	summarySentenceCount = 3
)

var (
	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)
	citationMarker  = regexp.MustCompile(`\[\d+\]`)
)

type SummaryFetcher struct {
	completer llm.Completer
	logger    logger.ILogger
}

func NewSummaryFetcher(completer llm.Completer, log logger.ILogger) *SummaryFetcher {
	return &SummaryFetcher{completer: completer, logger: log}
}

// Fetch asks for a landscape overview and trims it to a short summary.
// ok is false when the completion call failed.
func (s *SummaryFetcher) Fetch(ctx context.Context, topic string) (summary string, ok bool) {
	resp, err := s.completer.Complete(ctx, systemAndUser(summaryPrompt(topic), topic), llm.ModelSonar)
	if err != nil {
		s.logger.Warn("SummaryFetcher", "Completion failed", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return NoSummary, false
	}
	return ExtractSummary(llm.ExtractText(resp)), true
}

// ExtractSummary keeps the first three sentences, appending "..." when
// more text followed.
func ExtractSummary(text string) string {
	text = strings.TrimSpace(citationMarker.ReplaceAllString(text, ""))
	if text == "" || text == llm.NoContentSentinel {
		return NoSummary
	}

	bounds := sentencePattern.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return text
	}

	n := len(bounds)
	if n > summarySentenceCount {
		n = summarySentenceCount
	}
	parts := make([]string, 0, n)
	for _, b := range bounds[:n] {
		parts = append(parts, strings.Join(strings.Fields(text[b[0]:b[1]]), " "))
	}
	summary := strings.Join(parts, " ")

	if strings.TrimSpace(text[bounds[n-1][1]:]) != "" {
		summary += "..."
	}
	return summary
}
