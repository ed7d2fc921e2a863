package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/mapper"
	"research-gap-be/internal/pkg/logger"
	"research-gap-be/internal/pkg/metrics"
	"research-gap-be/internal/pkg/serverutils"
	"research-gap-be/pkg/gap"
)

const (
	EndpointSearch           = "search"
	EndpointGenerateInsights = "generate_insights"

	FailedSummary  = "Failed to process research request."
	FailedInsight  = "An unexpected error occurred while analysing this topic; the results below are incomplete."
	FailedQuestion = "What are the most pressing open questions on this topic?"
)

type IResearchService interface {
	Search(ctx context.Context, topic string) (*dto.ResearchResultResponse, error)
	RegenerateInsights(ctx context.Context, topic string) (*dto.InsightsResponse, error)
}

// Summarizer produces the short landscape summary shown above the charts.
type Summarizer interface {
	Fetch(ctx context.Context, topic string) (summary string, ok bool)
}

// Synthesizer refines heuristic gaps into insights and questions.
type Synthesizer interface {
	Synthesize(ctx context.Context, topic string, priorInsights, priorQuestions []string) gap.Synthesis
}

// ResearchFetchers are the four dimension fetchers plus the summary.
type ResearchFetchers struct {
	Temporal    gap.DimensionFetcher
	Regional    gap.DimensionFetcher
	Demographic gap.DimensionFetcher
	Thematic    gap.DimensionFetcher
	Summary     Summarizer
}

type researchService struct {
	fetchers    ResearchFetchers
	synthesizer Synthesizer
	publisher   IResearchEventPublisher
	metrics     *metrics.Metrics
	logger      logger.ILogger
	mapper      *mapper.ResearchMapper
}

func NewResearchService(
	fetchers ResearchFetchers,
	synthesizer Synthesizer,
	publisher IResearchEventPublisher,
	m *metrics.Metrics,
	log logger.ILogger,
) IResearchService {
	return &researchService{
		fetchers:    fetchers,
		synthesizer: synthesizer,
		publisher:   publisher,
		metrics:     m,
		logger:      log,
		mapper:      mapper.NewResearchMapper(),
	}
}

func (s *researchService) Search(ctx context.Context, topic string) (res *dto.ResearchResultResponse, err error) {
	if err := serverutils.ValidateRequest(dto.TopicQuery{Topic: topic}); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("ResearchService", "Search pipeline panicked", map[string]interface{}{
				"topic": topic,
				"panic": fmt.Sprint(r),
			})
			res, err = s.failedResult(topic), nil
		}
		if res != nil {
			s.finish(ctx, EndpointSearch, topic, res.Degraded, len(res.Insights), len(res.SuggestedQuestions), start)
		}
	}()

	dims, summary, degraded := s.fetchAll(ctx, topic)

	gaps := gap.DetectGaps(topic, dims.Temporal, dims.Regional, dims.Demographic, dims.Thematic)
	for _, f := range gaps.Flags {
		s.metrics.RecordGapFlag(string(f.Dimension), f.Rule)
	}

	synthesis := s.synthesizer.Synthesize(ctx, topic, gaps.Insights, gaps.Questions)
	degraded = degraded || synthesis.Degraded

	s.logger.Info("ResearchService", "Search completed", map[string]interface{}{
		"topic":     topic,
		"gap_flags": len(gaps.Flags),
		"degraded":  degraded,
	})

	result := s.mapper.FromPipeline(topic, summary, dims, synthesis.Insights, synthesis.Questions, degraded)
	return s.mapper.ToResponse(result), nil
}

// fetchAll runs the summary and the four dimension fetchers concurrently.
// Each goroutine writes only its own slot; a panic in any of them is
// re-raised on the calling goroutine after all have settled.
func (s *researchService) fetchAll(ctx context.Context, topic string) (mapper.Dimensions, string, bool) {
	fetchers := []gap.DimensionFetcher{
		s.fetchers.Temporal,
		s.fetchers.Regional,
		s.fetchers.Demographic,
		s.fetchers.Thematic,
	}

	results := make([]gap.FetchResult, len(fetchers))
	panics := make([]interface{}, len(fetchers)+1)
	var (
		summary   string
		summaryOK bool
		wg        sync.WaitGroup
	)

	for i, f := range fetchers {
		wg.Add(1)
		go func(i int, f gap.DimensionFetcher) {
			defer wg.Done()
			defer func() { panics[i] = recover() }()
			results[i] = f.Fetch(ctx, topic)
		}(i, f)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { panics[len(fetchers)] = recover() }()
		summary, summaryOK = s.fetchers.Summary.Fetch(ctx, topic)
	}()

	wg.Wait()

	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}

	degraded := !summaryOK
	for _, r := range results {
		if r.Failed {
			degraded = true
			s.metrics.RecordDimensionFailure(string(r.Dimension))
		}
	}

	return mapper.Dimensions{
		Temporal:    results[0].Points,
		Regional:    results[1].Points,
		Demographic: results[2].Points,
		Thematic:    results[3].Points,
	}, summary, degraded
}

func (s *researchService) RegenerateInsights(ctx context.Context, topic string) (res *dto.InsightsResponse, err error) {
	if err := serverutils.ValidateRequest(dto.TopicQuery{Topic: topic}); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("ResearchService", "Insight regeneration panicked", map[string]interface{}{
				"topic": topic,
				"panic": fmt.Sprint(r),
			})
			res, err = failedInsights(), nil
		}
		if res != nil {
			s.finish(ctx, EndpointGenerateInsights, topic, res.Degraded, len(res.Insights), len(res.SuggestedQuestions), start)
		}
	}()

	synthesis := s.synthesizer.Synthesize(ctx, topic, nil, nil)

	return &dto.InsightsResponse{
		Insights:           synthesis.Insights,
		SuggestedQuestions: synthesis.Questions,
		QuestionGroups:     toGroupResponses(gap.GroupQuestions(synthesis.Questions)),
		Degraded:           synthesis.Degraded,
	}, nil
}

func (s *researchService) finish(ctx context.Context, endpoint, topic string, degraded bool, insights, questions int, start time.Time) {
	s.metrics.RecordSearch(endpoint, degraded, time.Since(start))
	s.publisher.PublishCompleted(ctx, dto.ResearchCompletedMessage{
		Topic:         topic,
		Endpoint:      endpoint,
		Degraded:      degraded,
		InsightCount:  insights,
		QuestionCount: questions,
		At:            time.Now().UTC(),
	})
}

func (s *researchService) failedResult(topic string) *dto.ResearchResultResponse {
	resp := s.mapper.ToResponse(s.mapper.FromPipeline(topic, FailedSummary, mapper.Dimensions{},
		[]string{FailedInsight}, []string{FailedQuestion}, true))
	return resp
}

func failedInsights() *dto.InsightsResponse {
	return &dto.InsightsResponse{
		Insights:           []string{FailedInsight},
		SuggestedQuestions: []string{FailedQuestion},
		QuestionGroups:     toGroupResponses(gap.GroupQuestions([]string{FailedQuestion})),
		Degraded:           true,
	}
}

func toGroupResponses(groups []gap.QuestionGroup) []dto.QuestionGroupResponse {
	out := make([]dto.QuestionGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.QuestionGroupResponse{Group: g.Name, Questions: g.Questions})
	}
	return out
}
