package gap

import (
	"context"
	"time"

	"research-gap-be/internal/pkg/logger"
	"research-gap-be/pkg/llm"
)

// FetchResult is what a dimension fetcher hands back. Failed is set when the
// completion call itself failed; Points is then empty.
type FetchResult struct {
	Dimension Dimension
	Points    []DimensionPoint
	Failed    bool
	Matched   int
}

// DimensionFetcher estimates one dimension for a topic. Implementations
// absorb upstream failures instead of returning them.
type DimensionFetcher interface {
	Dimension() Dimension
	Fetch(ctx context.Context, topic string) FetchResult
}

type Fetcher struct {
	dimension Dimension
	completer llm.Completer
	logger    logger.ILogger

	labels func() []string // nil when the dimension has no fixed label set
	prompt func(topic string, labels []string) string
	parse  func(text string, labels []string) ParseResult
	finish func(points []DimensionPoint) []DimensionPoint
}

func NewTemporalFetcher(completer llm.Completer, log logger.ILogger, now func() time.Time) *Fetcher {
	if now == nil {
		now = time.Now
	}
	return &Fetcher{
		dimension: DimensionTemporal,
		completer: completer,
		logger:    log,
		labels:    func() []string { return YearLabels(now()) },
		prompt:    temporalPrompt,
		parse:     ParseYearCounts,
		finish:    SortByYear,
	}
}

func NewRegionalFetcher(completer llm.Completer, log logger.ILogger) *Fetcher {
	return &Fetcher{
		dimension: DimensionRegional,
		completer: completer,
		logger:    log,
		labels:    func() []string { return Regions },
		prompt: func(topic string, labels []string) string {
			return labeledPrompt(topic, "region", labels)
		},
		parse: ParseLabeledCounts,
	}
}

func NewDemographicFetcher(completer llm.Completer, log logger.ILogger) *Fetcher {
	return &Fetcher{
		dimension: DimensionDemographic,
		completer: completer,
		logger:    log,
		labels:    func() []string { return Populations },
		prompt: func(topic string, labels []string) string {
			return labeledPrompt(topic, "population group", labels)
		},
		parse: ParseLabeledCounts,
	}
}

func NewThematicFetcher(completer llm.Completer, log logger.ILogger) *Fetcher {
	return &Fetcher{
		dimension: DimensionThematic,
		completer: completer,
		logger:    log,
		prompt: func(topic string, _ []string) string {
			return thematicPrompt(topic)
		},
		parse: func(text string, _ []string) ParseResult {
			return ParseCoverage(text)
		},
	}
}

func (f *Fetcher) Dimension() Dimension {
	return f.dimension
}

func (f *Fetcher) Fetch(ctx context.Context, topic string) FetchResult {
	var labels []string
	if f.labels != nil {
		labels = f.labels()
	}

	resp, err := f.completer.Complete(ctx, systemAndUser(f.prompt(topic, labels), topic), llm.ModelSonar)
	if err != nil {
		f.logger.Warn("DimensionFetcher", "Completion failed, returning empty dimension", map[string]interface{}{
			"dimension": f.dimension,
			"topic":     topic,
			"error":     err.Error(),
		})
		return FetchResult{Dimension: f.dimension, Points: []DimensionPoint{}, Failed: true}
	}

	parsed := f.parse(llm.ExtractText(resp), labels)
	if parsed.Empty() {
		f.logger.Debug("DimensionFetcher", "No lines matched the expected format", map[string]interface{}{
			"dimension": f.dimension,
			"topic":     topic,
		})
	}

	points := parsed.Points
	if labels != nil {
		points = Backfill(points, labels)
	}
	if f.finish != nil {
		points = f.finish(points)
	}

	return FetchResult{
		Dimension: f.dimension,
		Points:    points,
		Matched:   len(parsed.Points),
	}
}
