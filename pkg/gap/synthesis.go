package gap

import (
	"context"
	"regexp"
	"strings"

	"research-gap-be/internal/pkg/logger"
	"research-gap-be/pkg/llm"
)

const (
	placeholderInsightPrefix = "Could not parse detailed insights, but here's a general output: "
	PlaceholderQuestion      = "Consider exploring the general areas related to this topic."
	FailedInsight            = "Could not generate refined insights at this time."
)

var numberedItem = regexp.MustCompile(`^\d+[.)]\s+`)

// Synthesis is the outcome of the refinement call. Raw holds the extracted
// upstream text, empty when the call failed.
type Synthesis struct {
	Insights  []string
	Questions []string
	Degraded  bool
	Raw       string
}

type Synthesizer struct {
	completer llm.Completer
	logger    logger.ILogger
}

func NewSynthesizer(completer llm.Completer, log logger.ILogger) *Synthesizer {
	return &Synthesizer{completer: completer, logger: log}
}

// Synthesize asks the model to refine the heuristic gaps into insights and
// research questions. With no prior insights it asks for broad
// interdisciplinary questions instead. It never returns empty lists.
func (s *Synthesizer) Synthesize(ctx context.Context, topic string, priorInsights, priorQuestions []string) Synthesis {
	resp, err := s.completer.Complete(ctx, systemAndUser(synthesisPrompt(topic, priorInsights), topic), llm.ModelSonar)
	if err != nil {
		s.logger.Warn("Synthesizer", "Refinement call failed, keeping heuristic output", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		insights := nonEmpty(priorInsights)
		if len(insights) == 0 {
			insights = []string{FailedInsight}
		}
		questions := nonEmpty(priorQuestions)
		if len(questions) == 0 {
			questions = []string{PlaceholderQuestion}
		}
		return Synthesis{Insights: insights, Questions: questions, Degraded: true}
	}

	raw := llm.ExtractText(resp)
	insights, questions := ParseInsightBlock(raw)

	if len(insights) == 0 {
		insights = nonEmpty(priorInsights)
	}
	if len(questions) == 0 {
		questions = nonEmpty(priorQuestions)
	}

	trimmed := strings.TrimSpace(raw)
	if len(insights) == 0 && trimmed != "" {
		insights = []string{placeholderInsightPrefix + trimmed}
	}
	if len(questions) == 0 && trimmed != "" {
		questions = []string{PlaceholderQuestion}
	}

	return Synthesis{
		Insights:  insights,
		Questions: questions,
		Raw:       raw,
	}
}

// ParseInsightBlock splits a bulleted answer into insights and questions.
// Bullets before a "Research Questions" (or "Suggested Questions") header are
// insights, bullets after it are questions. The header line is not collected.
func ParseInsightBlock(text string) (insights, questions []string) {
	insights, questions = []string{}, []string{}
	inQuestions := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "research questions") || strings.Contains(lower, "suggested questions") {
			inQuestions = true
			continue
		}

		item, ok := bulletItem(line)
		if !ok || item == "" {
			continue
		}
		if inQuestions {
			questions = append(questions, item)
		} else {
			insights = append(insights, item)
		}
	}
	return insights, questions
}

func bulletItem(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			runes := []rune(line)
			return strings.TrimSpace(string(runes[2:])), true
		}
	}
	if loc := numberedItem.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:]), true
	}
	return "", false
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
