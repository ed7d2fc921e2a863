package mapper

import (
	"testing"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/entity"
	"research-gap-be/pkg/gap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchMapper_FromPipeline(t *testing.T) {
	m := NewResearchMapper()

	e := m.FromPipeline("AI ethics", "Summary.", Dimensions{
		Temporal:    []gap.DimensionPoint{{Label: "2023", Value: 4}, {Label: "bogus", Value: 1}},
		Regional:    []gap.DimensionPoint{{Label: "Africa", Value: 0}},
		Demographic: []gap.DimensionPoint{{Label: "Women", Value: 3}},
		Thematic:    []gap.DimensionPoint{{Label: "Policy", Value: 40}},
	}, nil, []string{"Why?"}, true)

	assert.Equal(t, []entity.TimelinePoint{{Year: 2023, Count: 4}}, e.Timeline)
	assert.Equal(t, []entity.NamedCount{{Name: "Africa", Count: 0}}, e.Regions)
	assert.Equal(t, []entity.NamedCount{{Name: "Women", Count: 3}}, e.Populations)
	assert.Equal(t, []entity.SubtopicCoverage{{Name: "Policy", Coverage: 40}}, e.Subtopics)
	assert.Equal(t, []string{}, e.Insights)
	assert.True(t, e.Degraded)
}

func TestResearchMapper_ResponseNeverHasNilArrays(t *testing.T) {
	resp := NewResearchMapper().ToResponse(&entity.ResearchResult{Query: "x"})

	assert.NotNil(t, resp.Timeline)
	assert.NotNil(t, resp.Regions)
	assert.NotNil(t, resp.Populations)
	assert.NotNil(t, resp.Subtopics)
	assert.NotNil(t, resp.Insights)
	assert.NotNil(t, resp.SuggestedQuestions)
}

func TestResearchMapper_SaveRequest(t *testing.T) {
	req := &dto.SaveResearchQueryRequest{
		Id:       "abc",
		Query:    "Mental Health in Africa",
		Timeline: []dto.TimelineData{{Year: 2020, Count: 18}},
		Regions:  []dto.RegionData{{Name: "Africa", Count: 3}},
	}

	e := NewResearchMapper().FromSaveRequest(req)

	assert.Equal(t, "abc", e.Id)
	assert.Equal(t, []entity.TimelinePoint{{Year: 2020, Count: 18}}, e.Timeline)
	assert.Equal(t, []entity.NamedCount{{Name: "Africa", Count: 3}}, e.Regions)
	assert.Empty(t, e.Subtopics)
}

func TestSavedQueryMapper_ModelRoundTrip(t *testing.T) {
	m := NewSavedQueryMapper()
	e := &entity.ResearchResult{
		Id:                 "q1",
		Query:              "AI ethics",
		Timeline:           []entity.TimelinePoint{{Year: 2024, Count: 2}},
		Regions:            []entity.NamedCount{{Name: "Europe", Count: 60}},
		Populations:        []entity.NamedCount{},
		Subtopics:          []entity.SubtopicCoverage{{Name: "Bias", Coverage: 30}},
		Insights:           []string{"a"},
		SuggestedQuestions: []string{"b?"},
	}

	row, err := m.ToModel(e, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), row.Position)
	assert.JSONEq(t, `[{"Year":2024,"Count":2}]`, string(row.Timeline))

	back, err := m.ToEntity(row)
	require.NoError(t, err)
	assert.Equal(t, e.Timeline, back.Timeline)
	assert.Equal(t, e.Subtopics, back.Subtopics)
	assert.Equal(t, e.SuggestedQuestions, back.SuggestedQuestions)
}
