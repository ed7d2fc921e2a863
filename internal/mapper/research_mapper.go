package mapper

import (
	"strconv"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/entity"
	"research-gap-be/pkg/gap"
)

type ResearchMapper struct{}

func NewResearchMapper() *ResearchMapper {
	return &ResearchMapper{}
}

// Dimensions groups the four fetched dimension arrays.
type Dimensions struct {
	Temporal    []gap.DimensionPoint
	Regional    []gap.DimensionPoint
	Demographic []gap.DimensionPoint
	Thematic    []gap.DimensionPoint
}

func (m *ResearchMapper) FromPipeline(topic, summary string, dims Dimensions, insights, questions []string, degraded bool) *entity.ResearchResult {
	timeline := make([]entity.TimelinePoint, 0, len(dims.Temporal))
	for _, p := range dims.Temporal {
		year, err := strconv.Atoi(p.Label)
		if err != nil {
			continue
		}
		timeline = append(timeline, entity.TimelinePoint{Year: year, Count: p.Value})
	}

	subtopics := make([]entity.SubtopicCoverage, 0, len(dims.Thematic))
	for _, p := range dims.Thematic {
		subtopics = append(subtopics, entity.SubtopicCoverage{Name: p.Label, Coverage: p.Value})
	}

	return &entity.ResearchResult{
		Query:              topic,
		Summary:            summary,
		Timeline:           timeline,
		Regions:            namedCounts(dims.Regional),
		Populations:        namedCounts(dims.Demographic),
		Subtopics:          subtopics,
		Insights:           orEmpty(insights),
		SuggestedQuestions: orEmpty(questions),
		Degraded:           degraded,
	}
}

func (m *ResearchMapper) ToResponse(e *entity.ResearchResult) *dto.ResearchResultResponse {
	if e == nil {
		return nil
	}

	timeline := make([]dto.TimelineData, 0, len(e.Timeline))
	for _, t := range e.Timeline {
		timeline = append(timeline, dto.TimelineData{Year: t.Year, Count: t.Count})
	}
	regions := make([]dto.RegionData, 0, len(e.Regions))
	for _, r := range e.Regions {
		regions = append(regions, dto.RegionData{Name: r.Name, Count: r.Count})
	}
	populations := make([]dto.PopulationData, 0, len(e.Populations))
	for _, p := range e.Populations {
		populations = append(populations, dto.PopulationData{Name: p.Name, Count: p.Count})
	}
	subtopics := make([]dto.SubtopicData, 0, len(e.Subtopics))
	for _, s := range e.Subtopics {
		subtopics = append(subtopics, dto.SubtopicData{Name: s.Name, Coverage: s.Coverage})
	}

	return &dto.ResearchResultResponse{
		Id:                 e.Id,
		Query:              e.Query,
		Summary:            e.Summary,
		Timeline:           timeline,
		Regions:            regions,
		Populations:        populations,
		Subtopics:          subtopics,
		Insights:           orEmpty(e.Insights),
		SuggestedQuestions: orEmpty(e.SuggestedQuestions),
		Degraded:           e.Degraded,
		SavedAt:            e.SavedAt,
	}
}

func (m *ResearchMapper) ToResponses(list []*entity.ResearchResult) []*dto.ResearchResultResponse {
	out := make([]*dto.ResearchResultResponse, 0, len(list))
	for _, e := range list {
		out = append(out, m.ToResponse(e))
	}
	return out
}

// FromResponse is the inverse of ToResponse. It is used for saved queries,
// which arrive and are stored in the response shape.
func (m *ResearchMapper) FromResponse(r *dto.ResearchResultResponse) *entity.ResearchResult {
	if r == nil {
		return nil
	}

	e := &entity.ResearchResult{
		Id:                 r.Id,
		Query:              r.Query,
		Summary:            r.Summary,
		Timeline:           make([]entity.TimelinePoint, 0, len(r.Timeline)),
		Regions:            make([]entity.NamedCount, 0, len(r.Regions)),
		Populations:        make([]entity.NamedCount, 0, len(r.Populations)),
		Subtopics:          make([]entity.SubtopicCoverage, 0, len(r.Subtopics)),
		Insights:           orEmpty(r.Insights),
		SuggestedQuestions: orEmpty(r.SuggestedQuestions),
		Degraded:           r.Degraded,
		SavedAt:            r.SavedAt,
	}
	for _, t := range r.Timeline {
		e.Timeline = append(e.Timeline, entity.TimelinePoint{Year: t.Year, Count: t.Count})
	}
	for _, x := range r.Regions {
		e.Regions = append(e.Regions, entity.NamedCount{Name: x.Name, Count: x.Count})
	}
	for _, x := range r.Populations {
		e.Populations = append(e.Populations, entity.NamedCount{Name: x.Name, Count: x.Count})
	}
	for _, s := range r.Subtopics {
		e.Subtopics = append(e.Subtopics, entity.SubtopicCoverage{Name: s.Name, Coverage: s.Coverage})
	}
	return e
}

func (m *ResearchMapper) FromSaveRequest(req *dto.SaveResearchQueryRequest) *entity.ResearchResult {
	if req == nil {
		return nil
	}
	return m.FromResponse(&dto.ResearchResultResponse{
		Id:                 req.Id,
		Query:              req.Query,
		Summary:            req.Summary,
		Timeline:           req.Timeline,
		Regions:            req.Regions,
		Populations:        req.Populations,
		Subtopics:          req.Subtopics,
		Insights:           req.Insights,
		SuggestedQuestions: req.SuggestedQuestions,
		Degraded:           req.Degraded,
	})
}

func namedCounts(points []gap.DimensionPoint) []entity.NamedCount {
	out := make([]entity.NamedCount, 0, len(points))
	for _, p := range points {
		out = append(out, entity.NamedCount{Name: p.Label, Count: p.Value})
	}
	return out
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
